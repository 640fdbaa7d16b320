package functions

// 窗口/排名函数，只能在窗口规格内求值
func windowFunctions() []*Descriptor {
	return []*Descriptor{
		windowFn("row_number", 0, 0, "Sequential number starting at 1 within a window partition"),
		windowFn("dense_rank", 0, 0, "Rank of rows within a window partition, without gaps"),
		windowFn("rank", 0, 0, "Rank of rows within a window partition, with gaps"),
		windowFn("cume_dist", 0, 0, "Cumulative distribution of values within a window partition"),
		windowFn("percent_rank", 0, 0, "Relative rank of rows within a window partition"),
		windowFn("ntile", 1, 1, "Ntile group id from 1 to n within an ordered window partition", pLit),
		windowFn("lag", 1, 3, "Value offset rows before the current row, or default", pCol, pLit, pLit),
		windowFn("lead", 1, 3, "Value offset rows after the current row, or default", pCol, pLit, pLit),
	}
}
