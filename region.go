package prezzario

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Region is static reference data describing one Italian region and
// whether it publishes an official regional price list. It is defined once
// and never persisted.
type Region struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	HasOfficialPriceList bool   `json:"hasOfficialPriceList"`
	PriceListURL         string `json:"priceListUrl,omitempty"`
}

// RegionUnknown is the region value used when inference finds no match.
const RegionUnknown = "unknown"

// Regions is the static reference table of Italian regions.
var Regions = []Region{
	{Code: "abruzzo", Name: "Abruzzo", HasOfficialPriceList: true, PriceListURL: "https://www.regione.abruzzo.it/content/prezzario-regionale"},
	{Code: "basilicata", Name: "Basilicata", HasOfficialPriceList: false},
	{Code: "calabria", Name: "Calabria", HasOfficialPriceList: true, PriceListURL: "https://www.regione.calabria.it/prezzario"},
	{Code: "campania", Name: "Campania", HasOfficialPriceList: true, PriceListURL: "https://www.regione.campania.it/regione/it/tematiche/prezzario-regionale"},
	{Code: "emilia-romagna", Name: "Emilia-Romagna", HasOfficialPriceList: true, PriceListURL: "https://territorio.regione.emilia-romagna.it/osservatorio/prezzari"},
	{Code: "friuli-venezia-giulia", Name: "Friuli-Venezia Giulia", HasOfficialPriceList: true, PriceListURL: "https://www.regione.fvg.it/rafvg/cms/RAFVG/infrastrutture-lavori-pubblici/prezzario"},
	{Code: "lazio", Name: "Lazio", HasOfficialPriceList: true, PriceListURL: "https://www.regione.lazio.it/cittadini/lavori-pubblici-infrastrutture/tariffa-prezzi"},
	{Code: "liguria", Name: "Liguria", HasOfficialPriceList: true, PriceListURL: "https://www.regione.liguria.it/homepage/infrastrutture/prezzario-regionale.html"},
	{Code: "lombardia", Name: "Lombardia", HasOfficialPriceList: true, PriceListURL: "https://www.regione.lombardia.it/wps/portal/istituzionale/HP/prezzario-opere-pubbliche"},
	{Code: "marche", Name: "Marche", HasOfficialPriceList: true, PriceListURL: "https://www.regione.marche.it/Regione-Utile/Paesaggio-Territorio-Urbanistica/Prezzario-regionale"},
	{Code: "molise", Name: "Molise", HasOfficialPriceList: false},
	{Code: "piemonte", Name: "Piemonte", HasOfficialPriceList: true, PriceListURL: "https://www.regione.piemonte.it/web/temi/protezione-civile-difesa-suolo-opere-pubbliche/prezzario-regionale"},
	{Code: "puglia", Name: "Puglia", HasOfficialPriceList: true, PriceListURL: "https://www.regione.puglia.it/web/opere-pubbliche/listino-prezzi"},
	{Code: "sardegna", Name: "Sardegna", HasOfficialPriceList: true, PriceListURL: "https://www.regione.sardegna.it/j/v/2568?s=1&v=9&c=12779"},
	{Code: "sicilia", Name: "Sicilia", HasOfficialPriceList: true, PriceListURL: "https://www.regione.sicilia.it/istituzioni/regione/strutture-regionali/assessorato-infrastrutture-mobilita/prezzario-unico-regionale"},
	{Code: "toscana", Name: "Toscana", HasOfficialPriceList: true, PriceListURL: "https://prezzariollpp.regione.toscana.it"},
	{Code: "trentino-alto-adige", Name: "Trentino-Alto Adige", HasOfficialPriceList: true, PriceListURL: "https://www.provincia.bz.it/lavoro-economia/appalti/elenco-prezzi.asp"},
	{Code: "umbria", Name: "Umbria", HasOfficialPriceList: true, PriceListURL: "https://www.regione.umbria.it/prezzario-regionale"},
	{Code: "valle-d-aosta", Name: "Valle d'Aosta", HasOfficialPriceList: false},
	{Code: "veneto", Name: "Veneto", HasOfficialPriceList: true, PriceListURL: "https://www.regione.veneto.it/web/lavori-pubblici/prezzario-regionale"},
}

// FindRegionByCode returns the region with the given code, or nil.
func FindRegionByCode(code string) *Region {
	for i := range Regions {
		if Regions[i].Code == code {
			return &Regions[i]
		}
	}
	return nil
}

// regionKeywords maps free-text keywords to region names. Entries are
// matched in order against the accent-folded lowercase title, so partial
// keywords ("emilia", "friuli") must come after any region whose full name
// contains them.
var regionKeywords = []struct {
	keyword string
	region  string
}{
	{"valle d'aosta", "Valle d'Aosta"},
	{"aosta", "Valle d'Aosta"},
	{"emilia", "Emilia-Romagna"},
	{"friuli", "Friuli-Venezia Giulia"},
	{"trentino", "Trentino-Alto Adige"},
	{"alto adige", "Trentino-Alto Adige"},
	{"abruzzo", "Abruzzo"},
	{"basilicata", "Basilicata"},
	{"calabria", "Calabria"},
	{"campania", "Campania"},
	{"lazio", "Lazio"},
	{"liguria", "Liguria"},
	{"lombardia", "Lombardia"},
	{"marche", "Marche"},
	{"molise", "Molise"},
	{"piemonte", "Piemonte"},
	{"puglia", "Puglia"},
	{"sardegna", "Sardegna"},
	{"sicilia", "Sicilia"},
	{"toscana", "Toscana"},
	{"umbria", "Umbria"},
	{"veneto", "Veneto"},
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTitle lowercases a free-text title and strips accents
// (e.g. "Unità" -> "unita") for keyword matching.
func NormalizeTitle(s string) string {
	result, _, _ := transform.String(foldAccents, strings.ToLower(s))
	return result
}

// InferRegion guesses the region a dataset title refers to using the fixed
// keyword table. The result is best-effort and must not be treated as
// authoritative metadata. Returns RegionUnknown when nothing matches.
func InferRegion(title string) string {
	folded := NormalizeTitle(title)
	for _, kw := range regionKeywords {
		if strings.Contains(folded, kw.keyword) {
			return kw.region
		}
	}
	return RegionUnknown
}

var yearRe = regexp.MustCompile(`20\d{2}`)

// InferYear extracts the first four-digit year from a dataset title,
// falling back to the current calendar year.
func InferYear(title string) int {
	if m := yearRe.FindString(title); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	return time.Now().Year()
}
