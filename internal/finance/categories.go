package finance

import "github.com/sakumate/saku/internal/model"

// ExpenseCategories is the fixed expense catalog. The last entry
// doubles as the fallback for ids this build does not recognize.
var ExpenseCategories = []model.Category{
	{ID: "makan", Label: "Makan", Emoji: "🍜", Color: "#ff6b6b"},
	{ID: "transport", Label: "Transport", Emoji: "🚌", Color: "#feca57"},
	{ID: "nongkrong", Label: "Nongkrong", Emoji: "☕", Color: "#48dbfb"},
	{ID: "belanja", Label: "Belanja", Emoji: "🛍️", Color: "#ff9ff3"},
	{ID: "tagihan", Label: "Tagihan", Emoji: "📱", Color: "#54a0ff"},
	{ID: "pendidikan", Label: "Pendidikan", Emoji: "📚", Color: "#5f27cd"},
	{ID: "kesehatan", Label: "Kesehatan", Emoji: "💊", Color: "#00d2d3"},
	{ID: "hiburan", Label: "Hiburan", Emoji: "🎮", Color: "#a29bfe"},
	{ID: "lainnya", Label: "Lainnya", Emoji: "📦", Color: "#b2bec3"},
}

// IncomeCategories is the fixed income catalog, fallback last.
var IncomeCategories = []model.Category{
	{ID: "kiriman", Label: "Kiriman", Emoji: "💸", Color: "#1dd1a1"},
	{ID: "gaji", Label: "Gaji", Emoji: "💼", Color: "#00b894"},
	{ID: "freelance", Label: "Freelance", Emoji: "💻", Color: "#00cec9"},
	{ID: "beasiswa", Label: "Beasiswa", Emoji: "🎓", Color: "#6c5ce7"},
	{ID: "jual", Label: "Jual Barang", Emoji: "🛒", Color: "#fdcb6e"},
	{ID: "investasi", Label: "Investasi", Emoji: "📈", Color: "#55efc4"},
	{ID: "hadiah", Label: "Hadiah", Emoji: "🎁", Color: "#fd79a8"},
	{ID: "lainnya_in", Label: "Lainnya", Emoji: "✨", Color: "#74b9ff"},
}

// Catalog returns the category catalog for a transaction type.
// Anything other than income selects the expense catalog.
func Catalog(txType model.TransactionType) []model.Category {
	if txType == model.TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// CategoryByID resolves a category id within the catalog for the given
// type. Unknown or empty ids resolve to the catalog's final entry so
// stale data from an older or newer build never breaks rendering.
func CategoryByID(id string, txType model.TransactionType) model.Category {
	catalog := Catalog(txType)
	for _, c := range catalog {
		if c.ID == id {
			return c
		}
	}
	return catalog[len(catalog)-1]
}
