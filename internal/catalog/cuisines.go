package catalog

// cuisineAliases maps folded spelling and locale variants to a single
// canonical cuisine id. Unknown input falls back to its own slug at the call
// site, so this table only needs the variants that actually occur.
func cuisineAliases() map[string]string {
	return map[string]string{
		"turkish": "turkish", "turk": "turkish", "turkiye": "turkish", "turque": "turkish",
		"turkisch": "turkish", "turca": "turkish", "anatolian": "turkish",
		"turk mutfagi": "turkish",

		"italian": "italian", "italiano": "italian", "italiana": "italian",
		"italienne": "italian", "italienisch": "italian", "italyan": "italian",

		"french": "french", "francaise": "french", "francais": "french",
		"fransiz": "french", "franzosisch": "french", "francesa": "french", "francese": "french",

		"mexican": "mexican", "mexicana": "mexican", "mexicaine": "mexican",
		"meksika": "mexican", "mexikanisch": "mexican",

		"chinese": "chinese", "chinoise": "chinese", "chinesisch": "chinese",
		"cin": "chinese", "cinese": "chinese", "chinesa": "chinese",

		"indian": "indian", "indienne": "indian", "indisch": "indian",
		"hint": "indian", "indiana": "indian",

		"japanese": "japanese", "japonaise": "japanese", "japanisch": "japanese",
		"japon": "japanese", "giapponese": "japanese", "japonesa": "japanese",

		"mediterranean": "mediterranean", "mediterraneenne": "mediterranean",
		"akdeniz": "mediterranean", "mediterran": "mediterranean", "mediterranea": "mediterranean",

		"middle eastern": "middle-eastern", "middle-eastern": "middle-eastern",
		"orta dogu": "middle-eastern", "levantine": "middle-eastern",

		"greek": "greek", "grecque": "greek", "griechisch": "greek",
		"yunan": "greek", "greca": "greek", "grega": "greek",

		"american": "american", "americaine": "american", "amerikan": "american",
		"amerikanisch": "american", "americana": "american",

		"thai": "thai", "thailandaise": "thai", "tayland": "thai", "tailandesa": "thai",
	}
}

// beverageKeywords mark category keys that get the beverage quality ranges.
// Matched case-insensitively against whole words of the category string.
func beverageKeywords() []string {
	return []string{
		"beverage", "drink", "juice", "smoothie", "shake", "milkshake",
		"cocktail", "mocktail", "lemonade", "tea", "coffee", "latte",
		"frappe", "icecek", "kahve", "sherbet", "ayran", "limonata",
	}
}
