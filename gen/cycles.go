package gen

import (
	"fmt"
	"strings"
)

// checkCycles rejects type graphs in which a type reaches itself through
// its own fields. The description model is a finite tree; such a type would
// need an unbounded one.
func checkCycles(file *File) error {
	edges := make(map[string][]string)

	structs := make(map[string]bool, len(file.Structs))
	for _, st := range file.Structs {
		structs[st.Name] = true
	}

	for _, st := range file.Structs {
		for _, f := range st.Fields {
			edges[st.Name] = append(edges[st.Name], f.refs...)
		}
	}
	for _, e := range file.Enums {
		for _, v := range e.Variants {
			if !v.Unit && structs[v.Name] {
				edges[e.Name] = append(edges[e.Name], v.Name)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			start := 0
			for i, n := range path {
				if n == name {
					start = i
					break
				}
			}
			cycle := append(path[start:], name)
			return fmt.Errorf("recursive type cannot be described: %s", strings.Join(cycle, " -> "))
		}
		state[name] = visiting
		path = append(path, name)
		for _, next := range edges[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, st := range file.Structs {
		if err := visit(st.Name); err != nil {
			return err
		}
	}
	for _, e := range file.Enums {
		if err := visit(e.Name); err != nil {
			return err
		}
	}
	return nil
}
