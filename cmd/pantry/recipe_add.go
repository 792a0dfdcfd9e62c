// Recipe add command creates a new recipe.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var (
	addName         string
	addDescription  string
	addInstructions string
	addPrepTime     int
	addCookTime     int
	addServings     int
	addDifficulty   string
	addSource       string
	addNotes        string
	addFavorite     bool
	addCategories   []string
	addTags         []string
	addIngredients  []string
	addFile         string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new recipe",
	Long: `Add creates a new recipe from flags or from a JSON file.

Ingredients are given as quantity:unit:name[:notes].

Example:
  pantry recipe add --name "Pancakes" --instructions "Mix and fry." \
    --ingredient "200:g:flour" --ingredient "2::eggs" \
    --category Breakfast --tag Quick
  pantry recipe add --file pancakes.json`,
	RunE: runRecipeAdd,
}

func init() {
	recipeAddCmd.Flags().StringVar(&addName, "name", "", "recipe name (required unless --file)")
	recipeAddCmd.Flags().StringVar(&addDescription, "description", "", "short description")
	recipeAddCmd.Flags().StringVar(&addInstructions, "instructions", "", "preparation instructions")
	recipeAddCmd.Flags().IntVar(&addPrepTime, "prep-time", 0, "preparation time in minutes")
	recipeAddCmd.Flags().IntVar(&addCookTime, "cook-time", 0, "cooking time in minutes")
	recipeAddCmd.Flags().IntVar(&addServings, "servings", 0, "number of servings (default 1)")
	recipeAddCmd.Flags().StringVar(&addDifficulty, "difficulty", "", "Easy, Medium, or Hard (default Medium)")
	recipeAddCmd.Flags().StringVar(&addSource, "source", "", "where the recipe came from")
	recipeAddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	recipeAddCmd.Flags().BoolVar(&addFavorite, "favorite", false, "mark as favorite")
	recipeAddCmd.Flags().StringArrayVar(&addCategories, "category", nil, "category name (repeatable)")
	recipeAddCmd.Flags().StringArrayVar(&addTags, "tag", nil, "tag name (repeatable)")
	recipeAddCmd.Flags().StringArrayVar(&addIngredients, "ingredient", nil, "ingredient as quantity:unit:name[:notes] (repeatable)")
	recipeAddCmd.Flags().StringVar(&addFile, "file", "", "JSON file holding the recipe")
}

func runRecipeAdd(cmd *cobra.Command, args []string) error {
	var input types.RecipeInput

	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("read recipe file: %w", err)
		}
		if err := json.Unmarshal(data, &input); err != nil {
			return fmt.Errorf("parse recipe file: %w", err)
		}
	} else {
		input = types.RecipeInput{
			Name:         addName,
			Description:  addDescription,
			Instructions: addInstructions,
			PrepTime:     addPrepTime,
			CookTime:     addCookTime,
			Servings:     addServings,
			Difficulty:   addDifficulty,
			Source:       addSource,
			Notes:        addNotes,
			Favorite:     addFavorite,
			Categories:   addCategories,
			Tags:         addTags,
		}
		for _, raw := range addIngredients {
			ing, err := parseIngredientFlag(raw)
			if err != nil {
				return err
			}
			input.Ingredients = append(input.Ingredients, ing)
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddRecipe(input)
	if err != nil {
		return fmt.Errorf("add recipe: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Created recipe %s (%s)\n", input.Name, shortID(id))
	return nil
}
