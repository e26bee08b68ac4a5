package catalog

import "github.com/lezzetly/lezzetly-backend/internal/locale"

// genericTips are appended to AI-generated drafts that come back with fewer
// than MinTips tips. They are deliberately bland: applicable to any dish.
func genericTips() []locale.Label {
	return []locale.Label{
		{
			locale.English: "Taste and adjust the seasoning before serving.",
			locale.Turkish: "Servis etmeden önce tadına bakıp baharatını ayarlayın.",
			locale.French:  "Goûtez et rectifiez l'assaisonnement avant de servir.",
			locale.German:  "Vor dem Servieren abschmecken und nachwürzen.",
			locale.Italian: "Assaggiate e regolate il condimento prima di servire.",
			locale.Portuguese: "Prove e ajuste os temperos antes de servir.",
			locale.Arabic:  "تذوق الطبق وعدّل التوابل قبل التقديم.",
			locale.Russian: "Перед подачей попробуйте блюдо и при необходимости досолите.",
			locale.Chinese: "上菜前请先尝味并调整调味。",
			locale.Hindi:   "परोसने से पहले चखकर मसाले ठीक कर लें।",
		},
		{
			locale.English: "Use fresh, seasonal ingredients whenever possible.",
			locale.Turkish: "Mümkün olduğunca taze ve mevsiminde malzemeler kullanın.",
			locale.French:  "Utilisez des ingrédients frais et de saison autant que possible.",
			locale.German:  "Verwenden Sie möglichst frische, saisonale Zutaten.",
			locale.Italian: "Usate ingredienti freschi e di stagione quando possibile.",
			locale.Portuguese: "Use ingredientes frescos e da estação sempre que possível.",
			locale.Arabic:  "استخدم مكونات طازجة وموسمية كلما أمكن.",
			locale.Russian: "По возможности используйте свежие сезонные продукты.",
			locale.Chinese: "尽量使用新鲜的应季食材。",
			locale.Hindi:   "जहाँ तक हो सके ताज़ी और मौसमी सामग्री का उपयोग करें।",
		},
		{
			locale.English: "Prepare and measure all ingredients before you start cooking.",
			locale.Turkish: "Pişirmeye başlamadan önce tüm malzemeleri hazırlayıp ölçün.",
			locale.French:  "Préparez et pesez tous les ingrédients avant de commencer la cuisson.",
			locale.German:  "Bereiten Sie alle Zutaten vor und wiegen Sie sie ab, bevor Sie kochen.",
			locale.Italian: "Preparate e pesate tutti gli ingredienti prima di iniziare a cucinare.",
			locale.Portuguese: "Separe e meça todos os ingredientes antes de começar a cozinhar.",
			locale.Arabic:  "جهّز وقِس جميع المكونات قبل البدء في الطهي.",
			locale.Russian: "Подготовьте и отмерьте все ингредиенты до начала готовки.",
			locale.Chinese: "开始烹饪前，先备好并量好所有食材。",
			locale.Hindi:   "पकाना शुरू करने से पहले सभी सामग्री तैयार और मापकर रख लें।",
		},
	}
}
