package di_test

import (
	"testing"

	"github.com/sghaida/carsample/di"
)

type benchPart struct{ n int }

type benchMeta struct {
	Name  string
	Price uint
}

func benchCatalog(b *testing.B, parts int, opts ...di.ExportOption) *di.Catalog[*benchPart, benchMeta] {
	b.Helper()

	reg := di.NewMapRegistry()
	cat := di.NewCatalog[*benchPart, benchMeta]("bench", func(part string) (benchMeta, error) {
		name, err := di.Field(reg, part, "Name", "NoName")
		if err != nil {
			return benchMeta{}, err
		}
		price, err := di.Field(reg, part, "Price", uint(0))
		return benchMeta{Name: name, Price: price}, err
	})

	for i := 0; i < parts; i++ {
		part := "part-" + string(rune('a'+i))
		reg.Provide(part, "Name", part).Provide(part, "Price", uint(i))
		cat.MustExport(part, func() *benchPart { return &benchPart{n: i} }, opts...)
	}
	return cat
}

func benchMany(b *testing.B, cat *di.Catalog[*benchPart, benchMeta], force bool) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, h := range cat.Many() {
			_ = h.Metadata()
			if force {
				_ = h.Value()
			}
		}
	}
}

func BenchmarkMany_MetadataOnly(b *testing.B) {
	benchMany(b, benchCatalog(b, 2), false)
}

func BenchmarkMany_ForceNonShared(b *testing.B) {
	benchMany(b, benchCatalog(b, 2), true)
}

func BenchmarkMany_ForceShared(b *testing.B) {
	benchMany(b, benchCatalog(b, 2, di.WithCreationPolicy(di.Shared)), true)
}

func BenchmarkLazy_ValueMemoized(b *testing.B) {
	h := di.NewLazy("p", func() *benchPart { return &benchPart{} }, benchMeta{})
	_ = h.Value()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Value()
	}
}

func BenchmarkField(b *testing.B) {
	reg := di.NewMapRegistry().Provide("CarBMW", "Price", uint(51000))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.Field(reg, "CarBMW", "Price", uint(0))
	}
}
