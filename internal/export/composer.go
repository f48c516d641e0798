package export

import (
	"fmt"
	"strings"

	"ramen-review-api/internal/models"
)

// divider separates the post sections.
const divider = "・････━━━━━━━━━━━････・"

// Placeholders for optional fields the composer renders without failing.
const (
	defaultStation     = "最寄り駅"
	defaultWalkingTime = 5
)

// Compose renders the aggregate into the fixed Instagram post template.
// It is deterministic and does not validate; run Validate first. Missing
// optional fields (station, walking time) render as placeholders.
func Compose(agg models.ReviewExportAggregate) string {
	var b strings.Builder

	restaurantName := ""
	restaurantAddress := ""
	prefecture := ""
	if agg.Restaurant != nil {
		restaurantName = agg.Restaurant.Name
		restaurantAddress = agg.Restaurant.Address
		prefecture = agg.Restaurant.Prefecture
	}

	station := agg.NearestStation
	if station == "" {
		station = defaultStation
	}
	walkingTime := defaultWalkingTime
	if agg.WalkingTime != nil {
		walkingTime = *agg.WalkingTime
	}

	// Header
	fmt.Fprintf(&b, "#%s\n", restaurantName)
	fmt.Fprintf(&b, "📍%s 徒歩%d分\n", station, walkingTime)
	b.WriteString("\n")

	// Dish block
	fmt.Fprintf(&b, "拉麵🍜：%s\n", joinPricedItems(ramenLines(agg.RamenItems)))
	if len(agg.SideItems) > 0 {
		fmt.Fprintf(&b, "配菜🍥：%s\n", joinPricedItems(sideLines(agg.SideItems)))
	}
	fmt.Fprintf(&b, "點餐💁：%s・(%s)\n", agg.OrderMethod, strings.Join(agg.PaymentMethods, "・"))
	fmt.Fprintf(&b, "客製🆓：%s\n", formatCustomizations(agg.RamenItems))
	b.WriteString(divider + "\n")
	b.WriteString("\n")

	// Quoted review
	fmt.Fprintf(&b, "\"%s\"\n", agg.TextReview)
	b.WriteString("\n")

	// Logistics block
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "🗾：%s\n", restaurantAddress)
	fmt.Fprintf(&b, "🗓️：%s / %s入店 / %d人 / %s\n",
		agg.VisitDate.Format("2006.01.02"),
		agg.VisitTime,
		agg.PartySize,
		FormatReservationStatus(agg.ReservationStatus, WaitTimeLabel(agg.WaitTime)),
	)
	b.WriteString(divider + "\n")

	// Hashtag line
	b.WriteString(hashtagLine(prefecture))

	return b.String()
}

func ramenLines(items []models.RamenItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s ¥%d", item.Name, item.Price))
	}
	return lines
}

func sideLines(items []models.SideItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s ¥%d", item.Name, item.Price))
	}
	return lines
}

func joinPricedItems(lines []string) string {
	return strings.Join(lines, "、")
}

func formatCustomizations(items []models.RamenItem) string {
	var customizations []string
	for _, item := range items {
		if item.Customization != "" {
			customizations = append(customizations, item.Customization)
		}
	}
	if len(customizations) == 0 {
		return "無"
	}
	return strings.Join(customizations, "、")
}

func hashtagLine(prefecture string) string {
	tags := make([]string, 0, len(baseHashtags)+maxRegionTags+1)
	tags = append(tags, baseHashtags...)
	tags = append(tags, RegionTags(prefecture)...)
	tags = append(tags, closingHashtag)

	var b strings.Builder
	for i, tag := range tags {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("#" + tag)
	}
	return b.String()
}

// ComposePost runs the full export pipeline on an already validated
// aggregate: compose, measure, attach warnings.
func ComposePost(agg models.ReviewExportAggregate) models.ComposedPost {
	content := Compose(agg)
	stats := Stats(content)
	return models.ComposedPost{
		Content:  content,
		Stats:    stats,
		Warnings: Warnings(stats),
	}
}
