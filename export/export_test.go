package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/chime/export"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/testutil"
)

var fixture = []models.Alarm{
	{
		ID:              "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Name:            "Dinner",
		Kind:            "dinner",
		IntervalMinutes: 5,
		Sound:           "Bell",
		RepeatDays:      []models.Weekday{models.Monday, models.Wednesday},
	},
	{
		ID:              "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5c",
		Name:            "Voice memo",
		Kind:            "custom",
		IntervalMinutes: 1,
		Sound:           "Default",
		AudioURI:        "/tmp/recording.wav",
	},
}

type goldenOutput struct {
	name string
	out  []byte
}

func (g goldenOutput) Output() ([]byte, string) {
	return g.out, g.name
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected export.Format
		Err      bool
	}{
		{Name: "json", Input: "json", Expected: export.JSON},
		{Name: "upper case", Input: "PDF", Expected: export.PDF},
		{Name: "yml alias", Input: "yml", Expected: export.YAML},
		{Name: "extension", Input: ".xlsx", Expected: export.XLSX},
		{Name: "unknown", Input: "csv", Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			f, err := export.ParseFormat(tc.Input)
			if tc.Err {
				assert.ErrorIs(t, err, export.ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Expected, f)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.JSON, fixture))

	testutil.CompareGoldenFile(t, goldenOutput{
		name: "alarms_json",
		out:  buf.Bytes(),
	})
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.YAML, fixture))

	var got []models.Alarm

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, fixture[0], got[0])
	assert.Equal(t, "/tmp/recording.wav", got[1].AudioURI)
	assert.Empty(t, got[1].RepeatDays)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.XLSX, fixture))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows("Alarms")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "NAME", rows[0][1])
	assert.Equal(t, "Dinner", rows[1][1])
	assert.Equal(t, "5", rows[1][3])
	assert.Equal(t, "Mon, Wed", rows[1][5])
	assert.Equal(t, "None", rows[2][5])
}

func TestWritePDF(t *testing.T) {
	for _, alarms := range [][]models.Alarm{fixture, nil} {
		var buf bytes.Buffer

		require.NoError(t, export.Write(&buf, export.PDF, alarms))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	err := export.Write(&buf, export.Format("csv"), fixture)

	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
