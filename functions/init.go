package functions

// builtinDescriptors 内置函数目录，按分组顺序排列
func builtinDescriptors() []*Descriptor {
	var all []*Descriptor
	for _, group := range [][]*Descriptor{
		operatorFunctions(),
		mathFunctions(),
		aggregationFunctions(),
		windowFunctions(),
		stringFunctions(),
		datetimeFunctions(),
		collectionFunctions(),
		jsonFunctions(),
		hashFunctions(),
		conditionalFunctions(),
		miscFunctions(),
	} {
		all = append(all, group...)
	}
	return all
}
