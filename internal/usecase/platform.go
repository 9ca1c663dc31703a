package usecase

import (
	"net/url"
	"strings"
)

// platformDomain maps a hostname substring to a retailer display name.
type platformDomain struct {
	Domain string
	Name   string
}

// platformDomains is matched in order, so more specific domains must come
// before broader ones that would mask them. Adding a retailer means
// appending a row.
var platformDomains = []platformDomain{
	{"magazineluiza.com.br", "Magalu"},
	{"magalu.com.br", "Magalu"},
	{"amazon.com.br", "Amazon"},
	{"amazon.com", "Amazon"},
	{"shopee.com.br", "Shopee"},
	{"s.shopee.com.br", "Shopee"},
	{"mercadolivre.com.br", "Mercado Livre"},
	{"produto.mercadolivre.com.br", "Mercado Livre"},
	{"natura.com.br", "Natura"},
	{"shein.com", "Shein"},
	{"shein.com.br", "Shein"},
	{"casasbahia.com.br", "Casas Bahia"},
	{"americanas.com.br", "Americanas"},
	{"netshoes.com.br", "Netshoes"},
	{"nike.com.br", "Nike"},
	{"adidas.com.br", "Adidas"},
	{"centauro.com.br", "Centauro"},
	{"dafiti.com.br", "Dafiti"},
	{"kabum.com.br", "Kabum"},
	{"sephora.com.br", "Sephora"},
	{"boticario.com.br", "Boticário"},
	{"carrefour.com.br", "Carrefour"},
	{"aliexpress.com", "AliExpress"},
	{"pt.aliexpress.com", "AliExpress"},
	{"renner.com.br", "Lojas Renner"},
	{"riachuelo.com.br", "Riachuelo"},
	{"fastshop.com.br", "Fastshop"},
	{"samsung.com.br", "Samsung"},
	{"puma.com.br", "Puma"},
	{"cobasi.com.br", "Cobasi"},
	{"vivara.com.br", "Vivara"},
	{"zattini.com.br", "Zattini"},
	{"belezanaweb.com.br", "Beleza na Web"},
	{"epocacosmeticos.com.br", "Época Cosméticos"},
	{"leroymerlin.com.br", "Leroy Merlin"},
	{"madeiramadeira.com.br", "Madeira Madeira"},
	{"extra.com.br", "Extra"},
	{"pontofrio.com.br", "Ponto Frio"},
	{"polishop.com.br", "Polishop"},
	{"dell.com.br", "Dell"},
	{"nespresso.com.br", "Nespresso"},
	{"avon.com.br", "Avon"},
	{"eudora.com.br", "Eudora"},
	{"camicado.com.br", "Camicado"},
}

// IdentifyPlatform maps a product URL to a known retailer display name.
// Matching is substring-based on the hostname so regional subdomains
// (produto.mercadolivre.com.br) still resolve. Returns "" when the URL
// cannot be parsed or the retailer is unknown.
func IdentifyPlatform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	hostname := strings.ToLower(u.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")

	for _, entry := range platformDomains {
		if strings.Contains(hostname, entry.Domain) {
			return entry.Name
		}
	}
	return ""
}
