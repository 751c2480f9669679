package category

import (
	"regexp"

	"github.com/finviz-dev/finviz/internal/model"
)

// keywords compiles a word-boundary alternation over lowercased keywords.
func keywords(alternation string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + alternation + `)\b`)
}

// defaultRules returns the built-in rule table. Order is the contract:
// multiple rules can match one description (a merchant name can carry both a
// transport and a food keyword) and the first match wins. Keyword sets
// deliberately carry both accented and unaccented spellings where statements
// differ; diacritics are not normalized.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:     "transport-travel",
			Category: model.CategoryTransport,
			pattern:  keywords(`uber|99app|movida|localiza|rentcars|gol|azul|latam|smiles|fidel|seguros|shell|ipiranga|posto|combustivel|estacionamento|parking|rodoviaria|vlt|metro`),
		},
		{
			Name:       "lodging",
			Category:   model.CategoryTransport,
			substrings: []string{"airbnb", "booking", "hoteis", "hotel"},
		},
		{
			Name:     "dining",
			Category: model.CategoryFood,
			pattern:  keywords(`ifood|rappi|mcdonald|mc\s?don|burger|bk|habib|pizza|veneza|restaurante|pizzaria|bar|pub|padaria|panificadora|confeitaria|lanchonete|cafe|cafeteria|starbucks|pamonha|coco\s?bambu|divino\s?fogao|ciaburger|ice\s?cream|eskimo`),
		},
		{
			Name:     "groceries",
			Category: model.CategoryFood,
			pattern:  keywords(`supermercado|mercado|atacadao|assai|carrefour|pao\s?de\s?acucar|extra|alimentos|hortifruti|varejao|sacolao|padre\s?cic|mercearia|armazem|carne|acougue|peixaria|adega|conveniencia|brisas|lago`),
		},
		{
			Name:     "retail",
			Category: model.CategoryShopping,
			pattern:  keywords(`amazon|shopee|mercadolivre|melicidade|shein|aliexpress|magalu|magazine|casas\s?bahia|pontofrio|americanas|zattini|netshoes|arezzo|ri\s?happy|pbkids|pimpolho|loja|vestuario|calcados|moda|hering|renner|riachuelo|cea|zara|dafiti|shopp|multicoisa|kalunga|olx|nupay`),
		},
		{
			Name:     "health-beauty",
			Category: model.CategoryHealth,
			pattern:  keywords(`drogaria|farmacia|drogasil|pague\s?menos|saopaulo|st\s?paulo|rosario|lider|camila|francy|ocidental|unimed|hospital|clinica|odonto|exame|laboratorio|beauty|salao|barbearia|estetica|perfumaria|cosmetico|o\s?boticario|natura|cpaps`),
		},
		{
			Name:     "digital-entertainment",
			Category: model.CategoryEntertainment,
			pattern:  keywords(`netflix|spotify|youtube|google\s?one|google\s?cloud|cloud|prime\s?video|disney|hbo|paramount|apple|itunes|kindle|audible|steam|epic\s?games|playstation|xbox|nintendo|linkedin|scribd|folha|globo|estadao|abril|editora|proweb|convertemos|cursor|openai|chatgpt|anthropic|midjourney`),
		},
		{
			Name:       "administrative",
			Category:   model.CategoryOther,
			substrings: []string{"ajuste", "pagamento", "transferencia", "iof"},
		},
		{
			// Named merchants whose descriptions carry no usable keyword.
			Name:       "named-merchants",
			Category:   model.CategoryFood,
			substrings: []string{"caffeine", "jim.com", "mariadasgracas", "leticiakelly", "joaobaptista", "josuelantonio"},
		},
	}
}
