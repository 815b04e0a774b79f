package board

// PartitionConnected splits candidates, none of which may be on b, into
// those that reach an existing tile through a path of adjacent candidates
// and those that do not. Both results keep the input order.
func PartitionConnected(b Board, candidates []Coordinate) (connected, notConnected []Coordinate) {
	pending := make(map[Coordinate]struct{}, len(candidates))
	for _, c := range candidates {
		pending[c] = struct{}{}
	}
	proven := make(map[Coordinate]struct{}, len(candidates))

	for _, root := range candidates {
		if _, ok := proven[root]; ok {
			continue
		}
		visited := map[Coordinate]struct{}{}
		stack := []Coordinate{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[cur]; ok {
				continue
			}
			visited[cur] = struct{}{}
			for _, adj := range Adjacent(cur) {
				_, onBoard := b[adj]
				_, isProven := proven[adj]
				if onBoard || isProven {
					for v := range visited {
						proven[v] = struct{}{}
					}
					break
				}
				if _, ok := pending[adj]; ok {
					if _, seen := visited[adj]; !seen {
						stack = append(stack, adj)
					}
				}
			}
		}
	}

	for _, c := range candidates {
		if _, ok := proven[c]; ok {
			connected = append(connected, c)
		} else {
			notConnected = append(notConnected, c)
		}
	}
	return connected, notConnected
}
