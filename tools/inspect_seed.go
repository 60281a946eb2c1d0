package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

func main() {
	s := store.NewMemStore()
	if err := store.Seed(s); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Record counts ===")
	counts := s.Counts()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-20s %d\n", k, counts[k])
	}

	fmt.Println("\n=== Knowledge categories ===")
	byCategory := map[string]int{}
	for _, a := range s.KnowledgeArticles() {
		byCategory[a.Category]++
	}
	printCounts(byCategory)

	fmt.Println("\n=== Template categories ===")
	byCategory = map[string]int{}
	for _, t := range s.LegalTemplates() {
		byCategory[t.Category]++
	}
	printCounts(byCategory)

	fmt.Println("\n=== Case law categories ===")
	byCategory = map[string]int{}
	for _, c := range s.CaseLaw() {
		byCategory[c.Category]++
	}
	printCounts(byCategory)

	fmt.Println("\n=== Guide states ===")
	byState := map[string]int{}
	for _, g := range s.StateLawGuides() {
		byState[g.State]++
	}
	printCounts(byState)
}

func printCounts(m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-30s %d\n", k, m[k])
	}
}
