package survey

// ResolveOrder maps the flow onto block indices in display order.
//
// With no flow, blocks appear in declaration order. With a flow, each flow
// identifier contributes the index of the block it uniquely names; entries
// matching zero or multiple blocks are dropped. The dropped count is
// returned so callers can surface a warning, but resolution itself never
// fails.
func ResolveOrder(blocks []Block, flow []string) (order []int, unmatched int) {
	if len(flow) == 0 {
		order = make([]int, len(blocks))
		for i := range blocks {
			order[i] = i
		}
		return order, 0
	}

	for _, id := range flow {
		match := -1
		unique := true
		for i := range blocks {
			if blocks[i].ID != id {
				continue
			}
			if match >= 0 {
				unique = false
				break
			}
			match = i
		}
		if match < 0 || !unique {
			unmatched++
			continue
		}
		order = append(order, match)
	}
	return order, unmatched
}

// OrderedBlocks returns the survey's blocks in display order, applying
// ResolveOrder to the survey's own flow.
func (s *Survey) OrderedBlocks() []Block {
	order, _ := s.ResolveOrder()
	blocks := make([]Block, 0, len(order))
	for _, i := range order {
		blocks = append(blocks, s.Blocks[i])
	}
	return blocks
}

// ResolveOrder resolves the survey's flow against its own blocks.
func (s *Survey) ResolveOrder() (order []int, unmatched int) {
	return ResolveOrder(s.Blocks, s.Flow)
}

// Questions flattens the survey into its block elements in display order.
func (s *Survey) Questions() []BlockElement {
	var out []BlockElement
	for _, b := range s.OrderedBlocks() {
		out = append(out, b.Elements...)
	}
	return out
}
