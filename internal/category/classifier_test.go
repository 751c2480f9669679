package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finviz-dev/finviz/internal/model"
)

func TestClassify_RuleGroups(t *testing.T) {
	tests := []struct {
		desc string
		want model.Category
	}{
		// Transport & travel.
		{"UBER *TRIP SAO PAULO", model.CategoryTransport},
		{"POSTO SHELL BR 101", model.CategoryTransport},
		{"LATAM AIRLINES BR", model.CategoryTransport},
		{"ESTACIONAMENTO CENTRO", model.CategoryTransport},
		{"AIRBNB PAYMENTS", model.CategoryTransport},
		{"HOTEL FAZENDA VALE", model.CategoryTransport},
		// Food & dining.
		{"IFOOD DELIVERY", model.CategoryFood},
		{"RESTAURANTE DO ZE", model.CategoryFood},
		{"PADARIA PAO QUENTE", model.CategoryFood},
		{"MCDONALD FILIAL 12", model.CategoryFood},
		{"MC DON LANCHES", model.CategoryFood},
		// Groceries map to Food too.
		{"SUPERMERCADO BOM PRECO", model.CategoryFood},
		{"ACOUGUE DO BAIRRO", model.CategoryFood},
		{"CARREFOUR HIPER", model.CategoryFood},
		// Shopping & retail.
		{"AMAZON MARKETPLACE", model.CategoryShopping},
		{"MERCADOLIVRE*VENDA", model.CategoryShopping},
		{"LOJA DAS FABRICAS", model.CategoryShopping},
		{"MAGAZINE LUIZA", model.CategoryShopping},
		// Health & beauty.
		{"DROGARIA PACHECO", model.CategoryHealth},
		{"CLINICA SAO LUCAS", model.CategoryHealth},
		{"O BOTICARIO 123", model.CategoryHealth},
		{"UNIMED MENSALIDADE", model.CategoryHealth},
		// Entertainment & digital services.
		{"NETFLIX.COM", model.CategoryEntertainment},
		{"SPOTIFY AB", model.CategoryEntertainment},
		{"STEAM PURCHASE", model.CategoryEntertainment},
		{"OPENAI *CHATGPT SUBSCR", model.CategoryEntertainment},
		// Administrative fallbacks.
		{"PAGAMENTO EFETUADO", model.CategoryOther},
		{"AJUSTE DE COBRANCA", model.CategoryOther},
		{"IOF COMPRA INTERNACIONAL", model.CategoryOther},
		// Named merchant overrides.
		{"MARIADASGRACAS 042", model.CategoryFood},
		{"JIM.COM LANCHES", model.CategoryFood},
		// Default.
		{"TED RECEBIDO 0001", model.CategoryOther},
		{"XPTO SERVICOS GERAIS", model.CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.desc), "description %q", tt.desc)
	}
}

func TestClassify_PriorityOrdering(t *testing.T) {
	// Matches both a Transport keyword (uber) and a Food keyword (cafe);
	// Transport rules run first.
	assert.Equal(t, model.CategoryTransport, Classify("UBER CAFE CENTRAL"))

	// Administrative rules run before the named-merchant overrides.
	assert.Equal(t, model.CategoryOther, Classify("pagamento caffeine club"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("ifood delivery"), Classify("IFOOD DELIVERY"))
	assert.Equal(t, model.CategoryFood, Classify("IfOoD dElIvErY"))
}

func TestClassify_WordBoundaries(t *testing.T) {
	// "uber" must match as a word, not inside another token.
	assert.Equal(t, model.CategoryOther, Classify("BLAUBERGEN GMBH"))
	assert.Equal(t, model.CategoryTransport, Classify("uber trip"))

	// The dining keyword "mc don" requires a boundary right after "don", so
	// the common "MC DONALDS" spelling falls through to the default.
	assert.Equal(t, model.CategoryOther, Classify("MC DONALDS CENTRO"))
}

func TestClassify_TotalAndPure(t *testing.T) {
	valid := make(map[model.Category]bool)
	for _, c := range model.AllCategories() {
		valid[c] = true
	}

	inputs := []string{"", " ", "????", "ifood", "uber", "random text 123", "<memo>"}
	for _, in := range inputs {
		first := Classify(in)
		assert.True(t, valid[first], "category %q for input %q", first, in)
		assert.Equal(t, first, Classify(in), "repeated classification of %q", in)
	}
}

func TestClassify_EmptyString(t *testing.T) {
	assert.Equal(t, model.CategoryOther, Classify(""))
}

func TestNewWithRules(t *testing.T) {
	c := NewWithRules([]Rule{{Name: "all-food", Category: model.CategoryFood, substrings: []string{""}}})
	assert.Equal(t, model.CategoryFood, c.Classify("anything"))
	assert.Len(t, c.Rules(), 1)
}

func TestDefaultRules_Order(t *testing.T) {
	names := make([]string, 0)
	for _, r := range New().Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"transport-travel",
		"lodging",
		"dining",
		"groceries",
		"retail",
		"health-beauty",
		"digital-entertainment",
		"administrative",
		"named-merchants",
	}, names)
}
