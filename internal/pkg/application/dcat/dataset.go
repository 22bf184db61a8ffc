package dcat

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/cayleygraph/quad"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

//DatasetURI resolves the subject of a dataset. The original uri takes
//precedence over the registered uri, and a uri below the catalog base is
//minted when neither is a valid absolute uri.
func DatasetURI(ds domain.Dataset, baseCatalogURI string) string {
	if isAbsoluteURI(ds.OriginalURI) {
		return ds.OriginalURI
	}
	if isAbsoluteURI(ds.URI) {
		return ds.URI
	}
	return fmt.Sprintf("%s/%s/datasets/%s", strings.TrimSuffix(baseCatalogURI, "/"), ds.CatalogID, ds.ID)
}

func isAbsoluteURI(s string) bool {
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

//ProjectDataset adds a dataset, or a dataset series, to the graph and returns
//its resource
func ProjectDataset(g *rdf.Graph, ds domain.Dataset, series SeriesData, baseCatalogURI, publisherURI string) *rdf.Resource {
	uri := DatasetURI(ds, baseCatalogURI)
	r := g.Resource(uri)

	addLocalizedLiteral(r, vocabulary.DCTTitle, ds.Title)
	addLocalizedLiteral(r, vocabulary.DCTDescription, ds.Description)
	addLinkedResource(r, vocabulary.DCTPublisher, publisherURI)

	if ds.IsSeries() {
		r.Add(vocabulary.RDFType, vocabulary.DCATDatasetSeries)
		addLinkedResource(r, vocabulary.DCATFirst, series.First)
		addLinkedResource(r, vocabulary.DCATLast, series.Last)
		return r
	}

	r.Add(vocabulary.RDFType, vocabulary.DCATDataset)
	addLiteral(r, vocabulary.DCTIdentifier, uri)

	for _, cp := range ds.ContactPoints {
		addContactPoint(g, r, cp)
	}

	addLocalizedLiteralList(r, vocabulary.DCATKeyword, ds.Keywords)
	addDateLiteral(r, vocabulary.DCTIssued, ds.Issued)
	addDateLiteral(r, vocabulary.DCTModified, ds.Modified)
	addLinkList(r, vocabulary.DCATLandingPage, ds.LandingPage)
	addLinkList(r, vocabulary.DCATTheme, ds.Themes())

	for _, d := range ds.Distribution {
		addDistribution(g, r, vocabulary.DCATHasDistribution, d)
	}
	for _, d := range ds.Sample {
		addDistribution(g, r, vocabulary.ADMSSample, d)
	}

	for _, t := range ds.Temporal {
		addTemporal(g, r, t)
	}

	addLinkList(r, vocabulary.DCTSpatial, ds.Spatial)
	addLinkedResource(r, vocabulary.DCTAccessRights, ds.AccessRight)

	addLegalBasis(g, r, vocabulary.RuleForNonDisclosure, ds.LegalBasisForRestriction)
	addLegalBasis(g, r, vocabulary.RuleForDataProcessing, ds.LegalBasisForProcessing)
	addLegalBasis(g, r, vocabulary.RuleForDisclosure, ds.LegalBasisForAccess)

	addQualityAnnotation(g, r, "iso:Accuracy", ds.Accuracy)
	addQualityAnnotation(g, r, "iso:Completeness", ds.Completeness)
	addQualityAnnotation(g, r, "iso:Currentness", ds.Currentness)
	addQualityAnnotation(g, r, "iso:Availability", ds.Availability)
	addQualityAnnotation(g, r, "iso:Relevance", ds.Relevance)

	for _, ref := range ds.References {
		if ref.ReferenceType == "" || ref.Source == "" {
			continue
		}
		r.Add(referencePredicate(ref.ReferenceType), quad.IRI(ref.Source))
	}

	for _, rel := range ds.RelatedResources {
		if rel.URI == "" {
			continue
		}
		r.Add(vocabulary.DCTRelation, quad.IRI(rel.URI))
		addLangMap(g.Resource(rel.URI), vocabulary.RDFSLabel, rel.PrefLabel)
	}

	addLinkedResource(r, vocabulary.DCTProvenance, ds.Provenance)
	addLinkedResource(r, vocabulary.DCTAccrualPeriodicity, ds.Frequency)

	for _, c := range ds.ConformsTo {
		addStandard(g, r, c)
	}
	for _, c := range ds.InformationModelsFromOtherSources {
		addStandard(g, r, c)
	}
	addLinkList(r, vocabulary.DCTConformsTo, ds.InformationModelsFromFDK)

	for _, orgID := range ds.QualifiedAttributions {
		addQualifiedAttribution(g, r, orgID)
	}

	if ds.Type != "" {
		r.Add(vocabulary.DCTType, term(ds.Type))
	}

	for _, code := range ds.Language {
		addLanguage(g, r, code)
	}

	addLinkedResource(r, vocabulary.DCATInSeries, series.InSeries)
	addLinkedResource(r, vocabulary.DCATNext, series.Next)
	addLinkedResource(r, vocabulary.DCATPrev, series.Prev)

	return r
}

func addContactPoint(g *rdf.Graph, r *rdf.Resource, cp domain.ContactPoint) {
	addSubResource(g, r, vocabulary.DCATContactPoint, vocabulary.VCARDOrganization, func(n *rdf.Resource) {
		addLocalizedLiteral(n, vocabulary.VCARDFn, cp.Name)
		addLinkedResource(n, vocabulary.VCARDHasEmail, contactURI(cp.Email, "mailto:"))
		addLinkedResource(n, vocabulary.VCARDHasURL, cp.URL)
		addLinkedResource(n, vocabulary.VCARDHasTelephone, contactURI(cp.Phone, "tel:"))
	})
}

//contactURI removes all whitespace and adds the scheme if it is missing
func contactURI(value, scheme string) string {
	value = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)

	if value == "" || strings.HasPrefix(value, scheme) {
		return value
	}
	return scheme + value
}

func addDistribution(g *rdf.Graph, r *rdf.Resource, predicate quad.IRI, d domain.Distribution) {
	addSubResource(g, r, predicate, vocabulary.DCATDistribution, func(n *rdf.Resource) {
		addLocalizedLiteral(n, vocabulary.DCTTitle, d.Title)
		addLocalizedLiteral(n, vocabulary.DCTDescription, d.Description)
		addLinkList(n, vocabulary.DCATDownloadURL, d.DownloadURL)
		addLinkList(n, vocabulary.DCATAccessURL, d.AccessURL)
		addLinkedResource(n, vocabulary.DCTLicense, d.License)
		for _, c := range d.ConformsTo {
			addStandard(g, n, c)
		}
		addLinkList(n, vocabulary.FOAFPage, d.Page)
		addTermList(n, vocabulary.DCTFormat, d.Format)
		addTermList(n, vocabulary.DCATMediaType, d.MediaType)
		addLinkList(n, vocabulary.DCATAccessService, d.AccessServices)
	})
}

func addStandard(g *rdf.Graph, r *rdf.Resource, standard domain.UriWithLabel) {
	addSubResource(g, r, vocabulary.DCTConformsTo, vocabulary.DCTStandard, func(n *rdf.Resource) {
		addLinkedResource(n, vocabulary.DCTSource, standard.URI)
		addLangMap(n, vocabulary.SKOSPrefLabel, standard.PrefLabel)
	})
}

func addTemporal(g *rdf.Graph, r *rdf.Resource, period domain.PeriodOfTime) {
	addSubResource(g, r, vocabulary.DCTTemporal, vocabulary.DCTPeriodOfTime, func(n *rdf.Resource) {
		addDateLiteral(n, vocabulary.SchemaStartDate, period.StartDate)
		addDateLiteral(n, vocabulary.SchemaEndDate, period.EndDate)
	})
}

//addLegalBasis adds one rule per legal basis, classified by category
func addLegalBasis(g *rdf.Graph, r *rdf.Resource, category quad.IRI, bases []domain.UriWithLabel) {
	for _, basis := range bases {
		addSubResource(g, r, vocabulary.CPSVFollows, vocabulary.CPSVRule, func(rule *rdf.Resource) {
			addSubResource(g, rule, vocabulary.CPSVImplements, vocabulary.ELILegalResource, func(lr *rdf.Resource) {
				addLinkedResource(lr, vocabulary.RDFSSeeAlso, basis.URI)
				addLangMap(lr, vocabulary.DCTDescription, basis.PrefLabel)
			})
			if rule.Len() > 0 {
				rule.Add(vocabulary.DCTType, category)
			}
		})
	}
}

func addQualityAnnotation(g *rdf.Graph, r *rdf.Resource, dimension string, qa *domain.QualityAnnotation) {
	if qa == nil {
		return
	}

	dim, ok := vocabulary.ResolveQualityDimension(dimension)
	if !ok {
		return
	}

	addSubResource(g, r, vocabulary.DQVHasQualityAnnotation, vocabulary.DQVQualityAnnotation, func(n *rdf.Resource) {
		if qa.MotivatedBy != "" {
			n.Add(vocabulary.OAMotivatedBy, term(qa.MotivatedBy))
		}
		addSubResource(g, n, vocabulary.OAHasBody, vocabulary.OATextualBody, func(body *rdf.Resource) {
			addLangMap(body, vocabulary.RDFValue, qa.HasBody)
		})
		if n.Len() > 0 {
			n.Add(vocabulary.DQVInDimension, dim)
		}
	})
}

//referencePredicate maps a reference type code such as dct:hasVersion to its
//property. Full IRIs are used as is.
func referencePredicate(code string) quad.IRI {
	code = strings.TrimPrefix(code, "dct:")
	if isAbsoluteURI(code) {
		return quad.IRI(code)
	}
	return quad.IRI(vocabulary.DCT + code)
}

func addQualifiedAttribution(g *rdf.Graph, r *rdf.Resource, orgID string) {
	if orgID == "" {
		return
	}
	addSubResource(g, r, vocabulary.PROVQualifiedAttribution, vocabulary.PROVAttribution, func(n *rdf.Resource) {
		n.Add(vocabulary.PROVAgent, vocabulary.QualifiedAttributionAgent(orgID))
		n.Add(vocabulary.DCATHadRole, vocabulary.ContributorRole)
	})
}

func addLanguage(g *rdf.Graph, r *rdf.Resource, code string) {
	if code == "" {
		return
	}

	iri := vocabulary.LanguageIRI(code)
	r.Add(vocabulary.DCTLanguage, iri)

	lang := g.Resource(string(iri))
	lang.Add(vocabulary.RDFType, vocabulary.DCTLinguisticSystem)
	lang.Add(vocabulary.ATAuthorityCode, quad.String(vocabulary.LanguageCode(code)))
}

func addTermList(r *rdf.Resource, predicate quad.IRI, values []string) {
	for _, v := range values {
		if v != "" {
			r.Add(predicate, term(v))
		}
	}
}

//term returns an IRI for absolute uris and oa: names, and a plain literal
//for anything else
func term(value string) quad.Value {
	if strings.HasPrefix(value, "oa:") {
		return quad.IRI(vocabulary.OA + strings.TrimPrefix(value, "oa:"))
	}
	if isAbsoluteURI(value) {
		return quad.IRI(value)
	}
	return quad.String(value)
}
