package catalog

import "github.com/lezzetly/lezzetly-backend/internal/locale"

// canonicalTags is the fixed tag canon. Keys are canonical tag keys as
// produced by locale.Slugify over the English value; entries carry a real
// translation for every supported locale so a partially-translated tag can be
// replaced wholesale.
func canonicalTags() map[string]locale.Label {
	return map[string]locale.Label{
		"vegetarian": {
			locale.English: "Vegetarian", locale.Turkish: "Vejetaryen", locale.French: "Végétarien",
			locale.German: "Vegetarisch", locale.Italian: "Vegetariano", locale.Portuguese: "Vegetariano",
			locale.Arabic: "نباتي", locale.Russian: "Вегетарианское", locale.Chinese: "素食", locale.Hindi: "शाकाहारी",
		},
		"vegan": {
			locale.English: "Vegan", locale.Turkish: "Vegan", locale.French: "Végane",
			locale.German: "Vegan", locale.Italian: "Vegano", locale.Portuguese: "Vegano",
			locale.Arabic: "نباتي صرف", locale.Russian: "Веганское", locale.Chinese: "纯素", locale.Hindi: "वीगन",
		},
		"gluten-free": {
			locale.English: "Gluten-Free", locale.Turkish: "Glutensiz", locale.French: "Sans gluten",
			locale.German: "Glutenfrei", locale.Italian: "Senza glutine", locale.Portuguese: "Sem glúten",
			locale.Arabic: "خالٍ من الغلوتين", locale.Russian: "Без глютена", locale.Chinese: "无麸质", locale.Hindi: "ग्लूटेन मुक्त",
		},
		"quick": {
			locale.English: "Quick", locale.Turkish: "Pratik", locale.French: "Rapide",
			locale.German: "Schnell", locale.Italian: "Veloce", locale.Portuguese: "Rápido",
			locale.Arabic: "سريع", locale.Russian: "Быстрое", locale.Chinese: "快手菜", locale.Hindi: "झटपट",
		},
		"healthy": {
			locale.English: "Healthy", locale.Turkish: "Sağlıklı", locale.French: "Sain",
			locale.German: "Gesund", locale.Italian: "Salutare", locale.Portuguese: "Saudável",
			locale.Arabic: "صحي", locale.Russian: "Полезное", locale.Chinese: "健康", locale.Hindi: "सेहतमंद",
		},
		"spicy": {
			locale.English: "Spicy", locale.Turkish: "Acılı", locale.French: "Épicé",
			locale.German: "Scharf", locale.Italian: "Piccante", locale.Portuguese: "Picante",
			locale.Arabic: "حار", locale.Russian: "Острое", locale.Chinese: "辣味", locale.Hindi: "मसालेदार",
		},
		"traditional": {
			locale.English: "Traditional", locale.Turkish: "Geleneksel", locale.French: "Traditionnel",
			locale.German: "Traditionell", locale.Italian: "Tradizionale", locale.Portuguese: "Tradicional",
			locale.Arabic: "تقليدي", locale.Russian: "Традиционное", locale.Chinese: "传统", locale.Hindi: "पारंपरिक",
		},
		"dessert": {
			locale.English: "Dessert", locale.Turkish: "Tatlı", locale.French: "Dessert",
			locale.German: "Dessert", locale.Italian: "Dolce", locale.Portuguese: "Sobremesa",
			locale.Arabic: "حلوى", locale.Russian: "Десерт", locale.Chinese: "甜点", locale.Hindi: "मिठाई",
		},
		"breakfast": {
			locale.English: "Breakfast", locale.Turkish: "Kahvaltı", locale.French: "Petit-déjeuner",
			locale.German: "Frühstück", locale.Italian: "Colazione", locale.Portuguese: "Café da manhã",
			locale.Arabic: "فطور", locale.Russian: "Завтрак", locale.Chinese: "早餐", locale.Hindi: "नाश्ता",
		},
		"soup": {
			locale.English: "Soup", locale.Turkish: "Çorba", locale.French: "Soupe",
			locale.German: "Suppe", locale.Italian: "Zuppa", locale.Portuguese: "Sopa",
			locale.Arabic: "شوربة", locale.Russian: "Суп", locale.Chinese: "汤", locale.Hindi: "सूप",
		},
		"salad": {
			locale.English: "Salad", locale.Turkish: "Salata", locale.French: "Salade",
			locale.German: "Salat", locale.Italian: "Insalata", locale.Portuguese: "Salada",
			locale.Arabic: "سلطة", locale.Russian: "Салат", locale.Chinese: "沙拉", locale.Hindi: "सलाद",
		},
		"seafood": {
			locale.English: "Seafood", locale.Turkish: "Deniz Ürünleri", locale.French: "Fruits de mer",
			locale.German: "Meeresfrüchte", locale.Italian: "Frutti di mare", locale.Portuguese: "Frutos do mar",
			locale.Arabic: "مأكولات بحرية", locale.Russian: "Морепродукты", locale.Chinese: "海鲜", locale.Hindi: "समुद्री भोजन",
		},
		"street-food": {
			locale.English: "Street Food", locale.Turkish: "Sokak Lezzeti", locale.French: "Cuisine de rue",
			locale.German: "Streetfood", locale.Italian: "Cibo di strada", locale.Portuguese: "Comida de rua",
			locale.Arabic: "طعام الشارع", locale.Russian: "Уличная еда", locale.Chinese: "街头小吃", locale.Hindi: "स्ट्रीट फूड",
		},
		"comfort-food": {
			locale.English: "Comfort Food", locale.Turkish: "Ev Yemeği", locale.French: "Plat réconfortant",
			locale.German: "Hausmannskost", locale.Italian: "Cibo consolatorio", locale.Portuguese: "Comida caseira",
			locale.Arabic: "طعام منزلي", locale.Russian: "Домашняя еда", locale.Chinese: "家常菜", locale.Hindi: "घर का खाना",
		},
	}
}

// forbiddenTags are normalized (folded, slugified) terms that disqualify a
// tag in any locale: meta terms, placeholders and anything that says nothing
// about the dish.
func forbiddenTags() map[string]struct{} {
	terms := []string{
		"recipe", "recipes", "food", "dish", "meal", "delicious", "tasty", "yummy",
		"homemade", "easy-recipe", "best", "new", "test", "sample", "lorem-ipsum",
		"untitled", "n-a", "none", "null", "tag", "misc", "other",
	}
	out := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		out[t] = struct{}{}
	}
	return out
}
