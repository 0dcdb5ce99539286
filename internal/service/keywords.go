package service

import (
	"strings"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
)

// categoryKeywords binds each category of the closed set to lowercase
// keyword fragments. The slice order is a contract: when a label text
// matches more than one category, the first entry here wins for that label.
var categoryKeywords = []struct {
	Category domain.Category
	Keywords []string
}{
	{domain.CategoryDeadAnimals, []string{"dead animal", "carcass", "roadkill", "animal remains"}},
	{domain.CategoryGarbageCollection, []string{"garbage", "trash", "rubbish", "refuse", "junk", "dump"}},
	{domain.CategoryCleanPublicSpace, []string{"litter", "littering", "dirty street", "pollution"}},
	{domain.CategoryOverflowingDustbins, []string{"dustbin", "garbage bin", "trash can", "waste container", "overflowing"}},
	{domain.CategoryConstructionWaste, []string{"construction", "debris", "rubble", "demolition", "concrete", "brick"}},
	{domain.CategoryPlasticWaste, []string{"plastic", "bottle", "polythene", "wrapper", "packaging"}},
	{domain.CategoryOrganicWaste, []string{"organic", "food waste", "compost", "rotten", "peel", "leaf litter"}},
	{domain.CategoryDrainCleaning, []string{"drain", "sewage", "gutter", "sewer", "stagnant"}},
}

// garbageKeywords marks a label as garbage evidence in before/after scoring.
var garbageKeywords = []string{
	"garbage", "trash", "waste", "litter", "rubbish", "debris",
	"plastic", "bottle", "dump", "junk", "pollution", "dirt",
}

// cleanKeywords only count on the after image.
var cleanKeywords = []string{
	"clean", "tidy", "spotless", "neat", "swept", "pristine",
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// matchCategory returns the first category of the table whose keyword set
// matches the lowercase label text.
func matchCategory(labelText string) (domain.Category, bool) {
	for _, entry := range categoryKeywords {
		if containsAny(labelText, entry.Keywords) {
			return entry.Category, true
		}
	}
	return "", false
}
