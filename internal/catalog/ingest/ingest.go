package ingest

import (
	"strings"

	"parts-catalog/internal/catalog/model"
)

// Options controls one ingestion batch.
type Options struct {
	DiscountPercent float64  // per-user discount applied to PriceRaw
	ExcludedBrands  []string // brands dropped at ingestion
}

type fixedData struct {
	features    string
	equivalents string
}

// BuildProducts converts the mapped sheet rows into catalog records. Rows
// without a code or category are dropped; that filter is the contract the
// search engine relies on.
func BuildProducts(rows []map[string]string, fixed []map[string]string, m Mapping, fm FixedMapping, opt Options) []model.Product {
	multiplier := (100 - opt.DiscountPercent) / 100

	excluded := make(map[string]struct{}, len(opt.ExcludedBrands))
	for _, b := range opt.ExcludedBrands {
		excluded[strings.ToUpper(strings.TrimSpace(b))] = struct{}{}
	}

	fixedByCode := indexFixed(fixed, fm)

	out := make([]model.Product, 0, len(rows))
	for _, rec := range rows {
		if looksLikeHeaderRow(rec) {
			continue
		}

		code := FixEncoding(rec[resolveKey(rec, m.CodeKey)])
		category := FixEncoding(rec[resolveKey(rec, m.CategoryKey)])
		if code == "" || category == "" {
			continue
		}

		brand := FixEncoding(rec[resolveKey(rec, m.BrandKey)])
		if _, skip := excluded[strings.ToUpper(brand)]; skip {
			continue
		}

		price := ParsePrice(rec[resolveKey(rec, m.PriceKey)])
		fd := fixedByCode[strings.ToLower(code)]

		out = append(out, model.Product{
			Code:            code,
			Description:     FixEncoding(rec[resolveKey(rec, m.DescriptionKey)]),
			Brand:           brand,
			Category:        category,
			Subcategory:     FixEncoding(rec[resolveKey(rec, m.SubcategoryKey)]),
			PriceDisplay:    FormatPrice(price),
			PriceRaw:        price,
			Cost:            price * multiplier,
			StockQuantity:   ParseStock(rec[resolveKey(rec, m.StockKey)]),
			Features:        fd.features,
			EquivalentCodes: fd.equivalents,
		})
	}
	return out
}

func indexFixed(fixed []map[string]string, fm FixedMapping) map[string]fixedData {
	idx := make(map[string]fixedData, len(fixed))
	for _, rec := range fixed {
		code := strings.ToLower(FixEncoding(rec[resolveKey(rec, fm.CodeKey)]))
		if code == "" {
			continue
		}
		idx[code] = fixedData{
			features:    FixEncoding(rec[resolveKey(rec, fm.FeaturesKey)]),
			equivalents: FixEncoding(rec[resolveKey(rec, fm.EquivalentsKey)]),
		}
	}
	return idx
}
