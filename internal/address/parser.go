package address

import (
	"regexp"
	"strings"

	"ramen-review-api/internal/models"
)

// prefectureRegex matches any of the 47 prefecture names. The names share no
// prefixes, so the first match is always the full name.
var prefectureRegex = regexp.MustCompile(`(北海道|青森県|岩手県|宮城県|秋田県|山形県|福島県|茨城県|栃木県|群馬県|埼玉県|千葉県|東京都|神奈川県|新潟県|富山県|石川県|福井県|山梨県|長野県|岐阜県|静岡県|愛知県|三重県|滋賀県|京都府|大阪府|兵庫県|奈良県|和歌山県|鳥取県|島根県|岡山県|広島県|山口県|徳島県|香川県|愛媛県|高知県|福岡県|佐賀県|長崎県|熊本県|大分県|宮崎県|鹿児島県|沖縄県)`)

// postalCodeRegex matches a 〒-prefixed postal code, hyphenated or not.
var postalCodeRegex = regexp.MustCompile(`〒(\d{7}|\d{3}-\d{4})`)

// cityRegex matches the leading run of non-digit characters ending in a
// municipal suffix (市/区/町/村), applied to the text after the prefecture.
var cityRegex = regexp.MustCompile(`^([^0-9]*?[市区町村])`)

// Parse extracts the prefecture, city, and postal code from a free-text
// Japanese address. It never fails: fields that cannot be matched are left
// empty and StandardizedAddress always carries the cleaned input.
func Parse(raw string) models.Address {
	clean := strings.TrimPrefix(raw, "日本、")
	clean = strings.TrimPrefix(clean, "Japan, ")

	prefecture := prefectureRegex.FindString(clean)

	postalCode := ""
	if m := postalCodeRegex.FindStringSubmatch(clean); m != nil {
		postalCode = strings.ReplaceAll(m[1], "-", "")
	}

	city := ""
	if prefecture != "" {
		_, after, found := strings.Cut(clean, prefecture)
		if found {
			if m := cityRegex.FindStringSubmatch(after); m != nil {
				city = m[1]
			}
		}
	}

	standardized := strings.TrimSpace(postalCodeRegex.ReplaceAllString(clean, ""))

	return models.Address{
		Prefecture:          prefecture,
		City:                city,
		PostalCode:          postalCode,
		StandardizedAddress: standardized,
		OriginalAddress:     raw,
	}
}
