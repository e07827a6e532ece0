package model

// CategoryKind distinguishes spending categories from income categories.
type CategoryKind string

const (
	// KindExpense marks a category used for money going out.
	KindExpense CategoryKind = "expense"
	// KindIncome marks a category used for money coming in.
	KindIncome CategoryKind = "income"
)

// Sentinel category IDs. These are always present in the seeded set and are
// looked up by ID, never by slice position.
const (
	// CategoryOther absorbs expenses whose category cannot be resolved.
	CategoryOther = "other"
	// CategoryTransfer tags wallet-to-wallet movements, which carry no real category.
	CategoryTransfer = "transfer"
	// CategoryOtherIncome absorbs incomes whose category cannot be resolved.
	CategoryOtherIncome = "other-income"
)

// Category represents a user-visible grouping for transactions.
// The seeded defaults are never deleted; users may append more.
type Category struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Color         string       `json:"color"`
	Kind          CategoryKind `json:"kind"`
	Subcategories []string     `json:"subcategories,omitempty"`
}

// DefaultCategories returns the category set seeded on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: "housing", Name: "Housing", Icon: "home", Color: "#3B82F6", Kind: KindExpense, Subcategories: []string{"Rent", "HOA", "Property Tax"}},
		{ID: "food", Name: "Food & Dining", Icon: "utensils", Color: "#F97316", Kind: KindExpense, Subcategories: []string{"Groceries", "Restaurants", "Snacks"}},
		{ID: "transport", Name: "Transport", Icon: "car", Color: "#10B981", Kind: KindExpense, Subcategories: []string{"Fuel", "Transit", "Rideshare"}},
		{ID: "utilities", Name: "Utilities", Icon: "zap", Color: "#F59E0B", Kind: KindExpense, Subcategories: []string{"Power", "Water", "Internet", "Phone"}},
		{ID: "leisure", Name: "Leisure", Icon: "gamepad-2", Color: "#D946EF", Kind: KindExpense, Subcategories: []string{"Movies", "Travel", "Hobbies"}},
		{ID: "health", Name: "Health", Icon: "heart-pulse", Color: "#EF4444", Kind: KindExpense, Subcategories: []string{"Doctor", "Pharmacy", "Insurance"}},
		{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Color: "#8B5CF6", Kind: KindExpense, Subcategories: []string{"Clothes", "Electronics", "Gifts"}},
		{ID: "education", Name: "Education", Icon: "graduation-cap", Color: "#06B6D4", Kind: KindExpense, Subcategories: []string{"Courses", "Books", "Supplies"}},
		{ID: "financial", Name: "Financial", Icon: "trending-up", Color: "#84CC16", Kind: KindExpense, Subcategories: []string{"Investments", "Taxes", "Fees"}},
		{ID: CategoryOther, Name: "Other", Icon: "more-horizontal", Color: "#78716C", Kind: KindExpense},
		{ID: "salary", Name: "Salary", Icon: "banknote", Color: "#10B981", Kind: KindIncome},
		{ID: "freelance", Name: "Freelance", Icon: "laptop", Color: "#3B82F6", Kind: KindIncome},
		{ID: "investments", Name: "Investments", Icon: "trending-up", Color: "#F59E0B", Kind: KindIncome},
		{ID: "gifts", Name: "Gifts", Icon: "gift", Color: "#D946EF", Kind: KindIncome},
		{ID: CategoryOtherIncome, Name: "Other Income", Icon: "plus-circle", Color: "#64748B", Kind: KindIncome},
	}
}

// CategoryColors are the palette choices offered when creating a category.
var CategoryColors = []string{
	"#EF4444", "#F97316", "#F59E0B", "#84CC16", "#10B981",
	"#06B6D4", "#3B82F6", "#6366F1", "#8B5CF6", "#D946EF",
	"#F43F5E", "#78716C", "#64748B",
}
