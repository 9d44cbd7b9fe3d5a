package rules

import "github.com/ledgerize-dev/ledgerize/internal/format"

// Fallback sentinels. The amazon table keeps its own so unmatched amazon
// rows are distinguishable from generic uncategorized rows.
const (
	FallbackCategory       = "Uncategorized"
	AmazonFallbackCategory = "Uncategorized - Amazon"
)

// DefaultGenericRules returns the built-in generic category table, in
// priority order.
func DefaultGenericRules() []Rule {
	return []Rule{
		{Pattern: `costco\s+gas|shell|conoco|exxon|sinclair`, Category: "Gas"},
		{Pattern: `king\s+soopers|safeway|trader\s+joe|whole\s+foods|sprouts|costco|grocery`, Category: "Groceries"},
		{Pattern: `starbucks|coffee|bakery|donut`, Category: "Coffee"},
		{Pattern: `restaurant|chipotle|pizza|sushi|grill|taco|thai|ramen|doordash`, Category: "Dining"},
		{Pattern: `netflix|spotify|hulu|max\.com|paramount`, Category: "Subscriptions"},
		{Pattern: `xcel|black\s+hills\s+energy|denver\s+water|waste\s+connections`, Category: "Utilities"},
		{Pattern: `comcast|xfinity|centurylink`, Category: "Internet"},
		{Pattern: `verizon|t-mobile|at&t`, Category: "Phone"},
		{Pattern: `united|frontier|southwest|airbnb|hotel|hertz`, Category: "Travel"},
		{Pattern: `walgreens|cvs|pharmacy|kaiser`, Category: "Health"},
		{Pattern: `chewy|petco|petsmart|veterinary`, Category: "Pets"},
		{Pattern: `home\s+depot|lowe'?s|ace\s+hardware`, Category: "Home"},
		{Pattern: `payroll|direct\s+dep`, Category: "Salary"},
		{Pattern: `dividend|interest`, Category: "Investments"},
		{Pattern: `amazon|amzn|target|walmart`, Category: "Shopping"},
	}
}

// DefaultAmazonRules returns the amazon-specific table. Descriptions here
// are concatenated order item names, so the patterns key on product words.
func DefaultAmazonRules() []Rule {
	return []Rule{
		{Pattern: `book|kindle`, Category: "Books"},
		{Pattern: `coffee|tea\b|snack|grocery`, Category: "Groceries"},
		{Pattern: `vitamin|supplement`, Category: "Health"},
		{Pattern: `cable|charger|usb|battery|adapter`, Category: "Electronics"},
		{Pattern: `dog|cat\b|pet\b`, Category: "Pets"},
	}
}

// DefaultCategorizer builds the built-in rule tables. Extra generic rules
// are appended after the built-ins so built-in priority is preserved.
func DefaultCategorizer(extra ...Rule) (*Categorizer, error) {
	generic, err := NewRuleSet(append(DefaultGenericRules(), extra...), FallbackCategory)
	if err != nil {
		return nil, err
	}
	amazon, err := NewRuleSet(DefaultAmazonRules(), AmazonFallbackCategory)
	if err != nil {
		return nil, err
	}
	c := NewCategorizer(generic)
	c.AddSource(format.SourceAmazon, amazon)
	return c, nil
}
