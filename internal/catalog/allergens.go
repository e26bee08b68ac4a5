package catalog

import "github.com/lezzetly/lezzetly-backend/internal/model"

// allergenKeywords returns the nine fixed keyword families used by allergen
// inference. Keywords are stored in folded form (lowercase, diacritics
// stripped) and are matched by substring against folded ingredient text, so
// "Tereyağı" matches the "tereyagi" entry.
func allergenKeywords() map[model.AllergenFlag][]string {
	return map[model.AllergenFlag][]string{
		model.AllergenGluten: {
			"wheat", "flour", "bread", "pasta", "noodle", "bulgur", "barley", "rye",
			"semolina", "couscous", "cracker", "breadcrumb", "phyllo", "yufka",
			"bugday", "arpa", "cavdar", "irmik", "farine", "ble", "mehl", "weizen",
			"farina", "farinha", "trigo",
		},
		model.AllergenDairy: {
			"milk", "butter", "cheese", "cream", "yogurt", "yoghurt", "kefir", "whey",
			"ghee", "mascarpone", "mozzarella", "parmesan", "feta", "ricotta",
			"sut", "peynir", "tereyagi", "kaymak", "lor", "lait", "fromage", "beurre",
			"creme", "milch", "kase", "sahne", "latte", "formaggio", "panna", "leite", "queijo",
		},
		model.AllergenEgg: {
			"egg", "yolk", "albumen", "meringue", "mayonnaise", "aioli",
			"yumurta", "oeuf", "uovo", "uova", "huevo", "ovo ", "ovos",
		},
		model.AllergenNuts: {
			"almond", "walnut", "hazelnut", "pistachio", "cashew", "pecan",
			"macadamia", "chestnut", "pine nut", "praline", "marzipan", "nutella",
			"badem", "ceviz", "findik", "antep fistigi", "kestane",
			"noisette", "amande", "noix", "mandel", "walnuss", "nocciola", "mandorla",
		},
		model.AllergenPeanut: {
			"peanut", "groundnut", "yer fistigi", "cacahuete", "cacahuate",
			"arachide", "erdnuss", "amendoim", "arachidi",
		},
		model.AllergenSoy: {
			"soy", "soya", "tofu", "edamame", "tempeh", "miso", "soja",
		},
		model.AllergenSesame: {
			"sesame", "tahini", "tahin", "susam", "halva", "helva",
			"sesam", "sesamo", "gergelim",
		},
		model.AllergenFish: {
			"fish", "salmon", "tuna", "anchovy", "sardine", "cod", "trout",
			"mackerel", "sea bass", "halibut", "herring", "fish sauce",
			"balik", "hamsi", "levrek", "somon", "alabalik", "uskumru",
			"poisson", "saumon", "thon", "fisch", "lachs", "pesce", "peixe", "bacalhau",
		},
		model.AllergenShellfish: {
			"shrimp", "prawn", "crab", "lobster", "mussel", "oyster", "clam",
			"scallop", "squid", "octopus", "calamari", "crayfish",
			"karides", "midye", "ahtapot", "kalamar", "yengec",
			"crevette", "homard", "moule", "garnele", "gambero", "cozza", "camarao", "lula",
		},
	}
}

// meatKeywords is the folded keyword family used only for diet
// reconciliation; meat is not an allergen flag of its own.
func meatKeywords() []string {
	return []string{
		"chicken", "beef", "lamb", "pork", "veal", "duck", "turkey breast",
		"bacon", "ham", "sausage", "salami", "pepperoni", "meatball", "mince",
		"ground meat", "steak", "ribs", "liver", "chorizo", "prosciutto",
		"tavuk", "kuzu", "dana", "kiyma", "sucuk", "pastirma", "kofte", "ciger",
		"poulet", "boeuf", "agneau", "porc", "jambon", "saucisse",
		"huhn", "hahnchen", "rind", "schwein", "speck", "wurst",
		"pollo", "manzo", "agnello", "maiale", "salsiccia",
		"frango", "carne", "porco", "linguica",
	}
}
