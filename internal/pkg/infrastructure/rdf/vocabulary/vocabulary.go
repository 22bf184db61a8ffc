//Package vocabulary contains the ontology terms used when projecting catalogs
//and datasets to DCAT-AP-NO. All terms are full IRIs.
package vocabulary

import (
	"net/url"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/cayleygraph/quad/voc/schema"
	"github.com/cayleygraph/quad/voc/xsd"
)

const (
	DCAT   string = "http://www.w3.org/ns/dcat#"
	DCT    string = "http://purl.org/dc/terms/"
	ADMS   string = "http://www.w3.org/ns/adms#"
	AT     string = "http://publications.europa.eu/ontology/authority/"
	DQV    string = "http://www.w3.org/ns/dqv#"
	ISO    string = "http://iso.org/25012/2008/dataquality/"
	OA     string = "http://www.w3.org/ns/oa#"
	PROV   string = "http://www.w3.org/ns/prov#"
	FOAF   string = "http://xmlns.com/foaf/0.1/"
	VCARD  string = "http://www.w3.org/2006/vcard/ns#"
	SKOS   string = "http://www.w3.org/2004/02/skos/core#"
	CPSV   string = "http://purl.org/vocab/cpsv#"
	CPSVNO string = "https://data.norge.no/vocabulary/cpsvno#"
	ELI    string = "http://data.europa.eu/eli/ontology#"
)

// rdf, rdfs and xsd
const (
	RDFType     = quad.IRI(rdf.NS + "type")
	RDFValue    = quad.IRI(rdf.NS + "value")
	RDFSLabel   = quad.IRI(rdfs.NS + "label")
	RDFSSeeAlso = quad.IRI(rdfs.NS + "seeAlso")
	XSDDate     = quad.IRI(xsd.NS + "date")
	XSDDateTime = quad.IRI(xsd.NS + "dateTime")
)

// dcat
const (
	DCATCatalog       = quad.IRI(DCAT + "Catalog")
	DCATDataset       = quad.IRI(DCAT + "Dataset")
	DCATDatasetSeries = quad.IRI(DCAT + "DatasetSeries")
	DCATDistribution  = quad.IRI(DCAT + "Distribution")

	DCATAccessService   = quad.IRI(DCAT + "accessService")
	DCATAccessURL       = quad.IRI(DCAT + "accessURL")
	DCATContactPoint    = quad.IRI(DCAT + "contactPoint")
	DCATHasDataset      = quad.IRI(DCAT + "dataset")
	DCATHasDistribution = quad.IRI(DCAT + "distribution")
	DCATDownloadURL     = quad.IRI(DCAT + "downloadURL")
	DCATFirst           = quad.IRI(DCAT + "first")
	DCATHadRole         = quad.IRI(DCAT + "hadRole")
	DCATInSeries        = quad.IRI(DCAT + "inSeries")
	DCATKeyword         = quad.IRI(DCAT + "keyword")
	DCATLandingPage     = quad.IRI(DCAT + "landingPage")
	DCATLast            = quad.IRI(DCAT + "last")
	DCATMediaType       = quad.IRI(DCAT + "mediaType")
	DCATNext            = quad.IRI(DCAT + "next")
	DCATPrev            = quad.IRI(DCAT + "prev")
	DCATTheme           = quad.IRI(DCAT + "theme")
)

// dct
const (
	DCTLinguisticSystem = quad.IRI(DCT + "LinguisticSystem")
	DCTPeriodOfTime     = quad.IRI(DCT + "PeriodOfTime")
	DCTStandard         = quad.IRI(DCT + "Standard")

	DCTAccessRights       = quad.IRI(DCT + "accessRights")
	DCTAccrualPeriodicity = quad.IRI(DCT + "accrualPeriodicity")
	DCTConformsTo         = quad.IRI(DCT + "conformsTo")
	DCTDescription        = quad.IRI(DCT + "description")
	DCTFormat             = quad.IRI(DCT + "format")
	DCTIdentifier         = quad.IRI(DCT + "identifier")
	DCTIssued             = quad.IRI(DCT + "issued")
	DCTLanguage           = quad.IRI(DCT + "language")
	DCTLicense            = quad.IRI(DCT + "license")
	DCTModified           = quad.IRI(DCT + "modified")
	DCTProvenance         = quad.IRI(DCT + "provenance")
	DCTPublisher          = quad.IRI(DCT + "publisher")
	DCTRelation           = quad.IRI(DCT + "relation")
	DCTSource             = quad.IRI(DCT + "source")
	DCTSpatial            = quad.IRI(DCT + "spatial")
	DCTTemporal           = quad.IRI(DCT + "temporal")
	DCTTitle              = quad.IRI(DCT + "title")
	DCTType               = quad.IRI(DCT + "type")
)

// adms, at and schema.org
const (
	ADMSSample       = quad.IRI(ADMS + "sample")
	ATAuthorityCode  = quad.IRI(AT + "authority-code")
	SchemaStartDate  = quad.IRI(schema.NS + "startDate")
	SchemaEndDate    = quad.IRI(schema.NS + "endDate")
	EULanguagePrefix = "http://publications.europa.eu/resource/authority/language/"
)

// dqv, oa and the iso 25012 dimensions
const (
	DQVQualityAnnotation    = quad.IRI(DQV + "QualityAnnotation")
	DQVHasQualityAnnotation = quad.IRI(DQV + "hasQualityAnnotation")
	DQVInDimension          = quad.IRI(DQV + "inDimension")

	OATextualBody = quad.IRI(OA + "TextualBody")
	OAHasBody     = quad.IRI(OA + "hasBody")
	OAMotivatedBy = quad.IRI(OA + "motivatedBy")

	Accuracy     = quad.IRI(ISO + "Accuracy")
	Availability = quad.IRI(ISO + "Availability")
	Completeness = quad.IRI(ISO + "Completeness")
	Currentness  = quad.IRI(ISO + "Currentness")
	Relevance    = quad.IRI(ISO + "Relevance")
)

// prov
const (
	PROVAttribution          = quad.IRI(PROV + "Attribution")
	PROVAgent                = quad.IRI(PROV + "agent")
	PROVQualifiedAttribution = quad.IRI(PROV + "qualifiedAttribution")

	ContributorRole   = quad.IRI("http://registry.it.csiro.au/def/isotc211/CI_RoleCode/contributor")
	AttributionPrefix = "https://data.brreg.no/enhetsregisteret/api/enheter/"
)

// foaf, vcard and skos
const (
	FOAFAgent = quad.IRI(FOAF + "Agent")
	FOAFName  = quad.IRI(FOAF + "name")
	FOAFPage  = quad.IRI(FOAF + "page")

	VCARDOrganization = quad.IRI(VCARD + "Organization")
	VCARDFn           = quad.IRI(VCARD + "fn")
	VCARDHasEmail     = quad.IRI(VCARD + "hasEmail")
	VCARDHasTelephone = quad.IRI(VCARD + "hasTelephone")
	VCARDHasURL       = quad.IRI(VCARD + "hasURL")

	SKOSPrefLabel = quad.IRI(SKOS + "prefLabel")
)

// legal resources and rules
const (
	ELILegalResource = quad.IRI(ELI + "LegalResource")

	CPSVRule       = quad.IRI(CPSV + "Rule")
	CPSVFollows    = quad.IRI(CPSV + "follows")
	CPSVImplements = quad.IRI(CPSV + "implements")

	RuleForDataProcessing = quad.IRI(CPSVNO + "ruleForDataProcessing")
	RuleForDisclosure     = quad.IRI(CPSVNO + "ruleForDisclosure")
	RuleForNonDisclosure  = quad.IRI(CPSVNO + "ruleForNonDisclosure")
)

var dimensions = [...]quad.IRI{Accuracy, Availability, Completeness, Currentness, Relevance}

//ResolveQualityDimension maps a dimension name, either prefixed with iso: or
//given as a full IRI, to one of the five supported quality dimensions.
func ResolveQualityDimension(name string) (quad.IRI, bool) {
	iri := strings.Replace(name, "iso:", ISO, 1)
	for _, d := range dimensions {
		if string(d) == iri {
			return d, true
		}
	}
	return "", false
}

//QualifiedAttributionAgent returns the agent IRI of an organisation number
func QualifiedAttributionAgent(organisationID string) quad.IRI {
	return quad.IRI(AttributionPrefix + url.PathEscape(organisationID))
}

//LanguageIRI returns the EU authority IRI for a language code. Codes that
//already are absolute IRIs are returned unchanged.
func LanguageIRI(code string) quad.IRI {
	if strings.HasPrefix(code, "http://") || strings.HasPrefix(code, "https://") {
		return quad.IRI(code)
	}
	return quad.IRI(EULanguagePrefix + strings.ToUpper(code))
}

//LanguageCode returns the authority code at the end of a language IRI
func LanguageCode(code string) string {
	if i := strings.LastIndex(code, "/"); i >= 0 {
		code = code[i+1:]
	}
	return strings.ToUpper(code)
}

var namespaces = [...]voc.Namespace{
	{Prefix: "adms:", Full: ADMS},
	{Prefix: "at:", Full: AT},
	{Prefix: "cpsv:", Full: CPSV},
	{Prefix: "cpsvno:", Full: CPSVNO},
	{Prefix: "dcat:", Full: DCAT},
	{Prefix: "dct:", Full: DCT},
	{Prefix: "dqv:", Full: DQV},
	{Prefix: "eli:", Full: ELI},
	{Prefix: "foaf:", Full: FOAF},
	{Prefix: "iso:", Full: ISO},
	{Prefix: "oa:", Full: OA},
	{Prefix: "prov:", Full: PROV},
	{Prefix: "rdf:", Full: rdf.NS},
	{Prefix: "rdfs:", Full: rdfs.NS},
	{Prefix: "schema:", Full: schema.NS},
	{Prefix: "skos:", Full: SKOS},
	{Prefix: "vcard:", Full: VCARD},
	{Prefix: "xsd:", Full: xsd.NS},
}

//Namespaces returns the default prefix table of a projected graph
func Namespaces() []voc.Namespace {
	ns := make([]voc.Namespace, len(namespaces))
	copy(ns, namespaces[:])
	return ns
}
