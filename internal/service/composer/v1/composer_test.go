package composer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	serviceErrors "github.com/danilovkiri/dk_go_url_composer/internal/service/errors"
)

type brokenWriter struct{}

func (w brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("generic error")
}

type ComposerTestSuite struct {
	suite.Suite
	composer *Composer
	buffer   *bytes.Buffer
}

func (suite *ComposerTestSuite) SetupTest() {
	suite.buffer = &bytes.Buffer{}
	suite.composer, _ = InitComposer(suite.buffer)
}

func TestComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}

// Tests

func TestInitComposer(t *testing.T) {
	_, err := InitComposer(nil)
	assert.Equal(t, "nil writer was passed to service initializer", err.Error())
}

func (suite *ComposerTestSuite) TestRender() {
	tests := []struct {
		name     string
		protocol string
		resource string
		expected string
	}{
		{
			name:     "reference scenario",
			protocol: "http",
			resource: "www.example.com/index.html",
			expected: "http://www.example.com/index.html",
		},
		{
			name:     "ftp scenario",
			protocol: "ftp",
			resource: "files.example.org/data.zip",
			expected: "ftp://files.example.org/data.zip",
		},
		{
			name:     "empty fields",
			protocol: "",
			resource: "",
			expected: "://",
		},
		{
			name:     "separator inside resource kept verbatim",
			protocol: "http",
			resource: "a://b",
			expected: "http://a://b",
		},
		{
			name:     "separator inside protocol kept verbatim",
			protocol: "a://b",
			resource: "c",
			expected: "a://b://c",
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			full := suite.composer.Construct(tt.protocol, tt.resource)
			assert.Equal(t, tt.protocol, full.Protocol)
			assert.Equal(t, tt.resource, full.Resource)
			assert.Equal(t, tt.expected, suite.composer.Render(full))
		})
	}
}

func (suite *ComposerTestSuite) TestRenderIdempotence() {
	full := suite.composer.Construct("http", "www.example.com/index.html")
	first := suite.composer.Render(full)
	second := suite.composer.Render(full)
	assert.Equal(suite.T(), first, second)
}

func (suite *ComposerTestSuite) TestCopyIndependence() {
	full := suite.composer.Construct("http", "www.example.com/index.html")
	fullCopy := full
	fullCopy.Protocol = "ftp"
	fullCopy.Resource = "files.example.org/data.zip"
	assert.Equal(suite.T(), "http://www.example.com/index.html", suite.composer.Render(full))
	assert.Equal(suite.T(), "ftp://files.example.org/data.zip", suite.composer.Render(fullCopy))
}

func (suite *ComposerTestSuite) TestDisplay() {
	full := suite.composer.Construct("ftp", "files.example.org/data.zip")
	err := suite.composer.Display(full)
	assert.Equal(suite.T(), nil, err)
	assert.Equal(suite.T(), "ftp://files.example.org/data.zip\n", suite.buffer.String())
}

func (suite *ComposerTestSuite) TestDisplayRepeated() {
	full := suite.composer.Construct("http", "www.example.com/index.html")
	_ = suite.composer.Display(full)
	_ = suite.composer.Display(full)
	assert.Equal(suite.T(), "http://www.example.com/index.html\nhttp://www.example.com/index.html\n", suite.buffer.String())
}

func TestDisplay_Fail(t *testing.T) {
	processor, _ := InitComposer(brokenWriter{})
	full := processor.Construct("http", "www.example.com/index.html")
	err := processor.Display(full)
	var writeError *serviceErrors.ServiceWriteError
	assert.ErrorAs(t, err, &writeError)
	assert.Equal(t, "generic error", err.Error())
}

// Benchmarks

func BenchmarkInitComposer(b *testing.B) {
	buffer := &bytes.Buffer{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = InitComposer(buffer)
	}
}

func BenchmarkComposer_Render(b *testing.B) {
	processor, _ := InitComposer(&bytes.Buffer{})
	full := processor.Construct("http", "www.example.com/index.html")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = processor.Render(full)
	}
}

func BenchmarkComposer_Display(b *testing.B) {
	buffer := &bytes.Buffer{}
	processor, _ := InitComposer(buffer)
	full := processor.Construct("http", "www.example.com/index.html")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = processor.Display(full)
		buffer.Reset()
	}
}
