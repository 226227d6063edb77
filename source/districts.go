package source

import "strings"

// Districts lists the entity groups the API partitions counties into.
var Districts = []string{
	"Évora", "Leiria", "Santarém", "Aveiro", "Portalegre", "Viseu", "Beja",
	"Porto", "Braga", "Castelo branco", "Guarda", "Faro", "Viana do castelo",
	"Bragança", "Vila real", "Coimbra", "Açores", "Lisboa", "Madeira", "Setúbal",
}

// ValidDistrict reports whether name matches a known district,
// case-insensitively.
func ValidDistrict(name string) bool {
	for _, district := range Districts {
		if strings.EqualFold(district, name) {
			return true
		}
	}

	return false
}
