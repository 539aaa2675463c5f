package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/encrouter/catalog"
)

// ExampleFormation_Cost shows how route modifiers cap a battle's cost.
func ExampleFormation_Cost() {
	lobo := &catalog.Monster{ID: 1, Name: "Lobo", XP: 8, EscapeDifficult: true}
	f := &catalog.Formation{ID: 2, Enemies: []*catalog.Monster{lobo, lobo}}

	fmt.Println(f)
	fmt.Println(f.Cost(1, false, false))
	fmt.Println(f.Cost(1, true, false))
	fmt.Println(f.Cost(1, false, true))
	// Output:
	// Lobo x2 (2) cost 17
	// 17
	// 4
	// 10
}
