// Package main provides a multichecker-based static analysis tool.
//
// Usage: build the binary and run it over the module packages,
//
//	go build -o staticlint cmd/staticlint/main.go
//	./staticlint ./...
//
// The checker combines the standard golang.org/x/tools analysis passes, all SA
// staticcheck analyzers, selected S1/ST1/QF1 analyzers, public analyzers for
// sql.Rows and http.ServeMux misuse, and a custom analyzer reporting direct
// os.Exit calls in function main of package main.
package main

import (
	"github.com/gostaticanalysis/sqlrows/passes/sqlrows"
	"github.com/reillywatson/lintservemux"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/danilovkiri/dk_go_url_composer/cmd/staticlint/customanalyzer"
)

func main() {
	mychecks := []*analysis.Analyzer{
		customanalyzer.OsExitInMainAnalyzer,
		sqlrows.Analyzer,
		lintservemux.Analyzer,
		bools.Analyzer,
		errorsas.Analyzer,
		loopclosure.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		structtag.Analyzer,
		unreachable.Analyzer,
	}
	// non-SA analyzers to be included explicitly
	otherChecks := map[string]bool{
		"S1000":  true,
		"ST1000": true,
		"QF1003": true,
	}
	for _, v := range staticcheck.Analyzers {
		mychecks = append(mychecks, v.Analyzer)
	}
	for _, v := range simple.Analyzers {
		if otherChecks[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	for _, v := range stylecheck.Analyzers {
		if otherChecks[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	for _, v := range quickfix.Analyzers {
		if otherChecks[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	multichecker.Main(mychecks...)
}
