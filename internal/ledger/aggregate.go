package ledger

// Aggregate groups expenses by category. The order of Categories is the order
// in which each category first appears in expenses; items keep their input order.
func Aggregate(expenses []Expense) Summary {
	if len(expenses) == 0 {
		return Summary{NoData: true, Categories: []CategoryTotal{}}
	}

	var s Summary
	index := make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(s.Categories)
			index[e.Category] = i
			s.Categories = append(s.Categories, CategoryTotal{Category: e.Category})
		}
		ct := &s.Categories[i]
		ct.Items = append(ct.Items, Item{Amount: e.Amount, Description: e.Description})
		ct.Subtotal += e.Amount
		s.Total += e.Amount
	}
	return s
}

// Category returns the group for name, if present.
func (s Summary) Category(name string) (CategoryTotal, bool) {
	for _, ct := range s.Categories {
		if ct.Category == name {
			return ct, true
		}
	}
	return CategoryTotal{}, false
}

// CategoryNames returns the category labels in report order.
func (s Summary) CategoryNames() []string {
	names := make([]string, len(s.Categories))
	for i, ct := range s.Categories {
		names[i] = ct.Category
	}
	return names
}
