package address

import (
	"strings"
	"testing"

	"ramen-review-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.Address
	}{
		{
			name:  "tokyo address with country prefix",
			input: "日本、東京都渋谷区宇田川町13-8",
			expected: models.Address{
				Prefecture:          "東京都",
				City:                "渋谷区",
				PostalCode:          "",
				StandardizedAddress: "東京都渋谷区宇田川町13-8",
				OriginalAddress:     "日本、東京都渋谷区宇田川町13-8",
			},
		},
		{
			name:  "address with hyphenated postal code",
			input: "〒150-0042 東京都渋谷区宇田川町13-8",
			expected: models.Address{
				Prefecture:          "東京都",
				City:                "渋谷区",
				PostalCode:          "1500042",
				StandardizedAddress: "東京都渋谷区宇田川町13-8",
				OriginalAddress:     "〒150-0042 東京都渋谷区宇田川町13-8",
			},
		},
		{
			name:  "address with unhyphenated postal code",
			input: "〒5420076 大阪府大阪市中央区難波3丁目",
			expected: models.Address{
				Prefecture:          "大阪府",
				City:                "大阪市",
				PostalCode:          "5420076",
				StandardizedAddress: "大阪府大阪市中央区難波3丁目",
				OriginalAddress:     "〒5420076 大阪府大阪市中央区難波3丁目",
			},
		},
		{
			name:  "english country prefix",
			input: "Japan, 北海道札幌市中央区南三条西",
			expected: models.Address{
				Prefecture:          "北海道",
				City:                "札幌市",
				PostalCode:          "",
				StandardizedAddress: "北海道札幌市中央区南三条西",
				OriginalAddress:     "Japan, 北海道札幌市中央区南三条西",
			},
		},
		{
			name:  "town suffix",
			input: "福岡県糟屋郡宇美町1-1",
			expected: models.Address{
				Prefecture:          "福岡県",
				City:                "糟屋郡宇美町",
				PostalCode:          "",
				StandardizedAddress: "福岡県糟屋郡宇美町1-1",
				OriginalAddress:     "福岡県糟屋郡宇美町1-1",
			},
		},
		{
			name:  "no matching prefecture",
			input: "1600 Amphitheatre Parkway, Mountain View",
			expected: models.Address{
				Prefecture:          "",
				City:                "",
				PostalCode:          "",
				StandardizedAddress: "1600 Amphitheatre Parkway, Mountain View",
				OriginalAddress:     "1600 Amphitheatre Parkway, Mountain View",
			},
		},
		{
			name:  "prefecture without city suffix",
			input: "東京都1丁目",
			expected: models.Address{
				Prefecture:          "東京都",
				City:                "",
				PostalCode:          "",
				StandardizedAddress: "東京都1丁目",
				OriginalAddress:     "東京都1丁目",
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: models.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParse_StandardizedAddressNeverContainsPostalToken(t *testing.T) {
	inputs := []string{
		"〒150-0042 東京都渋谷区宇田川町13-8",
		"〒1000001 東京都千代田区千代田",
		"日本、〒604-8006 京都府京都市中京区",
	}

	for _, input := range inputs {
		result := Parse(input)
		assert.NotContains(t, result.StandardizedAddress, "〒", "input: %s", input)
	}
}

func TestParse_FirstPostalCodeWins(t *testing.T) {
	result := Parse("〒150-0042 東京都渋谷区 〒160-0022")
	assert.Equal(t, "1500042", result.PostalCode)
	assert.False(t, strings.Contains(result.StandardizedAddress, "〒"))
}
