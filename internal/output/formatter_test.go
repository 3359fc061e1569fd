package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "xlsx", "pdf"} {
		f := GetFormatterByName(name)
		assert.NotNil(t, f, "formatter %q must be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("docx"))
}

func TestGetFormatterByName_Aliases(t *testing.T) {
	assert.Equal(t, "xlsx", GetFormatterByName("excel").Name())
	assert.Equal(t, "xlsx", GetFormatterByName("spreadsheet").Name())
	assert.Equal(t, "console", GetFormatterByName("text").Name())
	assert.Equal(t, "json", GetFormatterByName("JSON-Pretty").Name())
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "xlsx", NormalizeFormatName(" Excel "))
	assert.Equal(t, "csv", NormalizeFormatName("CSV"))
}

func TestReportFilename(t *testing.T) {
	name := ReportFilename("xlsx")
	assert.True(t, strings.HasPrefix(name, "investment_report_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.Contains(t, name, time.Now().Format("20060102"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.ElementsMatch(t, []string{"console", "csv", "json", "xlsx", "pdf"}, names)
}
