package export

// regionHashtags maps a prefecture to its curated region tags. The catalog
// deliberately covers only prefectures that have come up in actual posts;
// anything else gets no region tags.
var regionHashtags = map[string][]string{
	// 関東
	"東京都":  {"東京ラーメン", "東京美食", "東京拉麵", "東京旅遊", "東京自由行"},
	"神奈川県": {"神奈川ラーメン", "神奈川美食", "神奈川拉麵", "橫濱美食", "鐮倉美食"},
	"埼玉県":  {"埼玉ラーメン", "埼玉美食", "埼玉拉麵"},
	"千葉県":  {"千葉ラーメン", "千葉美食", "千葉拉麵"},

	// 関西
	"大阪府": {"大阪ラーメン", "大阪美食", "大阪拉麵", "大阪旅遊", "大阪自由行"},
	"京都府": {"京都ラーメン", "京都美食", "京都拉麵", "京都旅遊", "京都自由行"},
	"兵庫県": {"兵庫ラーメン", "兵庫美食", "神戶美食", "神戶拉麵"},

	// 中部
	"愛知県": {"愛知ラーメン", "名古屋ラーメン", "名古屋美食", "名古屋拉麵"},
	"静岡県": {"静岡ラーメン", "静岡美食"},

	// 九州
	"福岡県":  {"福岡ラーメン", "博多ラーメン", "福岡美食", "博多美食", "九州美食"},
	"熊本県":  {"熊本ラーメン", "熊本美食", "九州美食"},
	"鹿児島県": {"鹿児島ラーメン", "鹿児島美食", "九州美食"},

	// 北海道・東北
	"北海道": {"北海道ラーメン", "札幌ラーメン", "北海道美食", "札幌美食"},
}

// maxRegionTags caps how many region tags a post carries.
const maxRegionTags = 3

// baseHashtags are always present, in this order, in every post.
var baseHashtags = []string{
	"在日台灣人",
	"ラーメン",
	"ラーメン好き",
	"奶辰吃拉麵",
	"日本拉麵",
	"日本美食",
	"日本旅遊",
	"ラーメン巡り",
	"日本グルメ",
}

// closingHashtag trails every hashtag line.
const closingHashtag = "好吃"

// RegionTags returns up to three region tags for the prefecture, or nil when
// the prefecture is not in the catalog.
func RegionTags(prefecture string) []string {
	tags, ok := regionHashtags[prefecture]
	if !ok {
		return nil
	}
	if len(tags) > maxRegionTags {
		tags = tags[:maxRegionTags]
	}
	return tags
}

// BaseTags returns the fixed base tag sequence included in every post.
func BaseTags() []string {
	return baseHashtags
}
