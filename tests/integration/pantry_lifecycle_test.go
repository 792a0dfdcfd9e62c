// End-to-end CLI tests covering the recipe and shopping list lifecycle,
// import/export, and backup/restore through the compiled binary.
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecipeLifecycle(t *testing.T) {
	env := newTestEnv(t)

	id := env.mustRunID("recipe", "add",
		"--name", "Pancakes",
		"--instructions", "Mix and fry.",
		"--ingredient", "200:g:flour",
		"--ingredient", "300:ml:milk",
		"--category", "Breakfast",
		"--tag", "Quick",
		"--favorite",
	)

	res := env.mustRun("recipe", "get", id, "--json")
	var recipe struct {
		Name        string   `json:"name"`
		Favorite    bool     `json:"favorite"`
		Categories  []string `json:"categories"`
		Tags        []string `json:"tags"`
		Ingredients []struct {
			Name     string  `json:"name"`
			Quantity float64 `json:"quantity"`
		} `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &recipe); err != nil {
		t.Fatalf("parsing recipe get output: %v", err)
	}
	if recipe.Name != "Pancakes" || !recipe.Favorite {
		t.Errorf("unexpected recipe: %+v", recipe)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("expected 2 ingredients, got %d", len(recipe.Ingredients))
	}

	res = env.mustRun("recipe", "list")
	if !strings.Contains(res.Stdout, "Pancakes") {
		t.Errorf("recipe list missing Pancakes:\n%s", res.Stdout)
	}

	res = env.mustRun("recipe", "search", "--query", "pancake", "--json")
	if !strings.Contains(res.Stdout, id) {
		t.Errorf("search by query did not find recipe:\n%s", res.Stdout)
	}
	res = env.mustRun("recipe", "search", "--category", "Breakfast", "--favorite", "--json")
	if !strings.Contains(res.Stdout, id) {
		t.Errorf("search by category+favorite did not find recipe:\n%s", res.Stdout)
	}

	env.mustRun("recipe", "delete", id)
	res = env.run("recipe", "get", id)
	if res.Err == nil {
		t.Error("expected recipe get to fail after delete")
	}
}

func TestShoppingListLifecycle(t *testing.T) {
	env := newTestEnv(t)

	r1 := env.mustRunID("recipe", "add", "--name", "Bread",
		"--ingredient", "200:g:flour")
	r2 := env.mustRunID("recipe", "add", "--name", "Pizza",
		"--ingredient", "300:g:flour")

	listID := env.mustRunID("shopping", "generate",
		"--recipe", r1, "--recipe", r2, "--name", "Baking day")

	res := env.mustRun("shopping", "show", listID, "--json")
	var list struct {
		Name  string `json:"name"`
		Items []struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Quantity float64 `json:"quantity"`
			Checked  bool    `json:"checked"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &list); err != nil {
		t.Fatalf("parsing shopping show output: %v", err)
	}
	if list.Name != "Baking day" {
		t.Errorf("expected list name %q, got %q", "Baking day", list.Name)
	}
	if len(list.Items) != 1 || list.Items[0].Quantity != 500 {
		t.Errorf("expected one aggregated flour item of 500, got %+v", list.Items)
	}

	itemID := list.Items[0].ID
	env.mustRun("shopping", "check", itemID)

	res = env.mustRun("shopping", "show", listID, "--json")
	if err := json.Unmarshal([]byte(res.Stdout), &list); err != nil {
		t.Fatalf("parsing shopping show output: %v", err)
	}
	if !list.Items[0].Checked {
		t.Error("expected item to be checked")
	}

	env.mustRun("shopping", "delete", listID)
	res = env.run("shopping", "show", listID)
	if res.Err == nil {
		t.Error("expected shopping show to fail after delete")
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	src := newTestEnv(t)
	dst := newTestEnv(t)

	src.mustRunID("recipe", "add", "--name", "Pancakes",
		"--ingredient", "200:g:flour", "--tag", "Quick")
	src.mustRunID("recipe", "add", "--name", "Waffles")

	exportFile := filepath.Join(t.TempDir(), "recipes.json")
	src.mustRun("export", "all", "-o", exportFile)

	res := dst.mustRun("import", exportFile)
	if !strings.Contains(res.Stdout, "Imported Pancakes") ||
		!strings.Contains(res.Stdout, "Imported Waffles") {
		t.Errorf("unexpected import output:\n%s", res.Stdout)
	}

	res = dst.mustRun("recipe", "list")
	if !strings.Contains(res.Stdout, "Pancakes") || !strings.Contains(res.Stdout, "Waffles") {
		t.Errorf("imported recipes missing from list:\n%s", res.Stdout)
	}
}

func TestImportReportsBadRecords(t *testing.T) {
	env := newTestEnv(t)

	importFile := filepath.Join(t.TempDir(), "mixed.json")
	payload := `[{"name": "Good"}, {"name": ""}]`
	if err := os.WriteFile(importFile, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	res := env.run("import", importFile)
	if res.Err == nil {
		t.Error("expected import with bad records to exit non-zero")
	}
	if !strings.Contains(res.Stdout, "Imported Good") {
		t.Errorf("good record was not imported:\n%s", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "Failed") {
		t.Errorf("bad record was not reported:\n%s", res.Stderr)
	}
}

func TestBackupRestore(t *testing.T) {
	env := newTestEnv(t)

	id := env.mustRunID("recipe", "add", "--name", "Pancakes")

	backupFile := filepath.Join(t.TempDir(), "pantry-backup.db")
	env.mustRun("backup", backupFile)

	env.mustRun("recipe", "delete", id)
	env.mustRun("restore", backupFile)

	res := env.mustRun("recipe", "list")
	if !strings.Contains(res.Stdout, "Pancakes") {
		t.Errorf("restored recipe missing:\n%s", res.Stdout)
	}
}

func TestDefaultLabelsAreSeeded(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("categories")
	if !strings.Contains(res.Stdout, "Breakfast") {
		t.Errorf("categories missing seeded defaults:\n%s", res.Stdout)
	}

	res = env.mustRun("tags")
	if !strings.Contains(res.Stdout, "Vegetarian") {
		t.Errorf("tags missing seeded defaults:\n%s", res.Stdout)
	}
}

func TestGeneratedListDefaultName(t *testing.T) {
	env := newTestEnv(t)

	listID := env.mustRunID("shopping", "generate")

	res := env.mustRun("shopping", "show", listID, "--json")
	var list struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &list); err != nil {
		t.Fatalf("parsing shopping show output: %v", err)
	}
	want := "Shopping list (" + time.Now().Format("2006-01-02") + ")"
	if list.Name != want {
		t.Errorf("expected default name %q, got %q", want, list.Name)
	}
}
