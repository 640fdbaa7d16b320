package functions

// 聚合函数
func aggregationFunctions() []*Descriptor {
	simple := []struct {
		name, description string
	}{
		{"max", "Maximum value of the expression in a group"},
		{"min", "Minimum value of the expression in a group"},
		{"count", "Number of items in a group"},
		{"sum", "Sum of all values in the expression"},
		{"avg", "Average of the values in a group"},
		{"mean", "Average of the values in a group"},
		{"sumDistinct", "Sum of distinct values in the expression"},
		{"stddev", "Alias for stddev_samp"},
		{"stddev_samp", "Unbiased sample standard deviation"},
		{"stddev_pop", "Population standard deviation"},
		{"variance", "Alias for var_samp"},
		{"var_samp", "Unbiased sample variance"},
		{"var_pop", "Population variance"},
		{"skewness", "Skewness of the values in a group"},
		{"kurtosis", "Kurtosis of the values in a group"},
		{"collect_list", "List of objects with duplicates"},
		{"collect_set", "Set of objects with duplicate elements eliminated"},
		{"grouping", "Whether a column in a GROUP BY list is aggregated"},
	}
	out := make([]*Descriptor, 0, len(simple)+9)
	for _, s := range simple {
		out = append(out, aggregate(s.name, 1, 1, s.description, pCol))
	}
	return append(out,
		aggregate("approx_count_distinct", 1, 2, "Approximate number of distinct items, rsd is the maximum relative standard deviation", pCol, pLit),
		deprecated(aggregate("approxCountDistinct", 1, 2, "Deprecated, use approx_count_distinct", pCol, pLit), "approx_count_distinct"),
		aggregate("countDistinct", 1, Unbounded, "Number of distinct combinations of the columns", pCol),
		aggregate("corr", 2, 2, "Pearson correlation coefficient", pCol, pCol),
		aggregate("covar_pop", 2, 2, "Population covariance", pCol, pCol),
		aggregate("covar_samp", 2, 2, "Sample covariance", pCol, pCol),
		aggregate("first", 1, 2, "First value in a group, optionally ignoring nulls", pCol, pLit),
		aggregate("last", 1, 2, "Last value in a group, optionally ignoring nulls", pCol, pLit),
		aggregate("grouping_id", 0, Unbounded, "Level of grouping", pCol),
	)
}
