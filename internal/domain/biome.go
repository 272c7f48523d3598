package domain

// Biome - классификация окружения игрока, пересчитывается периодически
type Biome uint8

const (
	BiomeForest Biome = iota
	BiomeDesert
	BiomeCorruption
	BiomeCrimson
	BiomeCorruptDesert
	BiomeCrimsonDesert
)

var biomeNames = map[Biome]string{
	BiomeForest:        "forest",
	BiomeDesert:        "desert",
	BiomeCorruption:    "corruption",
	BiomeCrimson:       "crimson",
	BiomeCorruptDesert: "corrupt_desert",
	BiomeCrimsonDesert: "crimson_desert",
}

func (b Biome) String() string {
	if name, ok := biomeNames[b]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - чтобы в JSON биом уходил строкой
func (b Biome) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// EvilBiome возвращает биом порчи для данного выравнивания
func EvilBiome(e EvilType) Biome {
	if e == EvilCrimson {
		return BiomeCrimson
	}
	return BiomeCorruption
}

// EvilDesertBiome возвращает пустынный вариант биома порчи
func EvilDesertBiome(e EvilType) Biome {
	if e == EvilCrimson {
		return BiomeCrimsonDesert
	}
	return BiomeCorruptDesert
}
