package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/repository"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	recipe string
	err    error
	calls  int
	// gotIngredients son çağrının malzeme listesini tutar.
	gotIngredients []string
	// onGenerate her çağrıda, yanıt dönmeden önce çalışır.
	onGenerate func()
}

func (f *fakeGenerator) GenerateRecipe(ctx context.Context, ingredients []string) (string, error) {
	f.calls++
	f.gotIngredients = ingredients
	if f.onGenerate != nil {
		f.onGenerate()
	}
	return f.recipe, f.err
}

func newRecipeFixture(t *testing.T) (*RecipeService, *CreditService, *fakeGenerator) {
	t.Helper()
	db := newTestDB(t)
	creditService := NewCreditService(repository.NewCreditRepository(db), zap.NewNop())
	gen := &fakeGenerator{recipe: "Tomato Soup\n1. Chop tomatoes..."}
	return NewRecipeService(gen, creditService, zap.NewNop()), creditService, gen
}

func TestGenerateDebitsOneCredit(t *testing.T) {
	svc, credits, gen := newRecipeFixture(t)

	if _, err := credits.Credit(1, 3, "chef@example.com"); err != nil {
		t.Fatalf("Credit: %v", err)
	}

	resp, err := svc.Generate(context.Background(), 1, "chef@example.com", []string{"tomato", "onion"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(resp.Recipe, "Tomato Soup") {
		t.Errorf("recipe = %q", resp.Recipe)
	}
	if resp.Credits != 2 {
		t.Errorf("remaining credits = %d, want 2", resp.Credits)
	}
	if len(gen.gotIngredients) != 2 || gen.gotIngredients[0] != "tomato" {
		t.Errorf("generator ingredients = %v", gen.gotIngredients)
	}
}

func TestGenerateInsufficientCredit(t *testing.T) {
	svc, _, gen := newRecipeFixture(t)

	_, err := svc.Generate(context.Background(), 1, "chef@example.com", []string{"tomato"})
	if !errors.Is(err, models.ErrInsufficientCredit) {
		t.Fatalf("err = %v, want ErrInsufficientCredit", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestGenerateFailureKeepsCredits(t *testing.T) {
	svc, credits, gen := newRecipeFixture(t)
	gen.recipe = ""
	gen.err = errors.New("model unavailable")

	if _, err := credits.Credit(1, 3, "chef@example.com"); err != nil {
		t.Fatalf("Credit: %v", err)
	}

	_, err := svc.Generate(context.Background(), 1, "chef@example.com", []string{"tomato"})
	if !errors.Is(err, models.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}

	balance, err := credits.GetBalance(1, "chef@example.com")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance != 3 {
		t.Errorf("balance = %d, want 3 (no debit)", balance)
	}
}

func TestGenerateEmptyIngredients(t *testing.T) {
	svc, _, _ := newRecipeFixture(t)

	if _, err := svc.Generate(context.Background(), 1, "chef@example.com", nil); err == nil {
		t.Error("expected error for empty ingredients")
	}
}

// Üretim sırasında bakiye başka bir istekle tükenirse tarif yine döner,
// yanıt güncel (sıfır) bakiyeyi taşır.
func TestGenerateDebitRaceStillReturnsRecipe(t *testing.T) {
	svc, credits, gen := newRecipeFixture(t)

	if _, err := credits.Credit(1, 1, "chef@example.com"); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	gen.onGenerate = func() {
		// Eşzamanlı isteğin bakiyeyi bitirmesini taklit et.
		if _, err := credits.Debit(1, 1); err != nil {
			t.Fatalf("draining debit: %v", err)
		}
	}

	resp, err := svc.Generate(context.Background(), 1, "chef@example.com", []string{"tomato"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Recipe == "" {
		t.Error("recipe should still be returned")
	}
	if resp.Credits != 0 {
		t.Errorf("credits = %d, want 0", resp.Credits)
	}
}
