package i18n

import "strings"

// Key identifies a translatable string. Handlers and templates reference
// translations through these constants so a typo fails to compile instead of
// silently rendering the raw code.
type Key string

const (
	NavHome     Key = "nav.home"
	NavProducts Key = "nav.products"
	NavServices Key = "nav.services"
	NavPortfolio Key = "nav.portfolio"
	NavContact  Key = "nav.contact"

	HeroHeadline    Key = "hero.headline"
	HeroSubheadline Key = "hero.subheadline"
	HeroCTAQuote    Key = "hero.cta.quote"
	HeroCTACall     Key = "hero.cta.call"

	AboutTitle   Key = "about.title"
	AboutContent Key = "about.content"

	ServicesTitle     Key = "services.title"
	PortfolioTitle    Key = "portfolio.title"
	TestimonialsTitle Key = "testimonials.title"
	PartnersTitle     Key = "partners.title"

	ProductsTitle         Key = "products.title"
	ProductsSubtitle      Key = "products.subtitle"
	ProductsViewAll       Key = "products.viewAll"
	ProductsInStock       Key = "products.inStock"
	ProductsLowStock      Key = "products.lowStock"
	ProductsOutOfStock    Key = "products.outOfStock"
	ProductsAvailableSoon Key = "products.availableSoon"
	ProductsRequestQuote  Key = "products.requestQuote"
	ProductsAddToQuote    Key = "products.addToQuote"
	ProductsNoneFound     Key = "products.noneFound"

	CartTitle   Key = "cart.title"
	CartEmpty   Key = "cart.empty"
	CartTotal   Key = "cart.total"
	CartSubmit  Key = "cart.submit"
	CartCleared Key = "cart.cleared"

	ContactTitle       Key = "contact.title"
	ContactFormName    Key = "contact.form.name"
	ContactFormEmail   Key = "contact.form.email"
	ContactFormPhone   Key = "contact.form.phone"
	ContactFormCompany Key = "contact.form.company"
	ContactFormType    Key = "contact.form.type"
	ContactFormProduct Key = "contact.form.product"
	ContactFormMessage Key = "contact.form.message"
	ContactFormSubmit  Key = "contact.form.submit"
	ContactSuccess     Key = "contact.success"
	ContactError       Key = "contact.error"
	ContactWhatsApp    Key = "contact.whatsapp"

	ErrRequired       Key = "errors.required"
	ErrInvalidEmail   Key = "errors.invalid_email"
	ErrContactChannel Key = "errors.contact_channel"
	ErrSearchFailed   Key = "errors.search_failed"
	ErrSubmitFailed   Key = "errors.submit_failed"

	QuoteCreated Key = "quote.created"
)

var en = map[Key]string{
	NavHome:      "Home",
	NavProducts:  "Products",
	NavServices:  "Services",
	NavPortfolio: "Portfolio",
	NavContact:   "Contact",

	HeroHeadline:    "Wings Engineering Services Ltd – Reliable Mechanical & Electrical Engineering in Thika",
	HeroSubheadline: "Generators • Engines • Spare Parts • Installation • Maintenance",
	HeroCTAQuote:    "Get a Quote",
	HeroCTACall:     "Call +254 718 234 222",

	AboutTitle:   "About Wings Engineering Services Ltd",
	AboutContent: "Wings Engineering Services Ltd is a Thika-based engineering firm providing mechanical and electrical engineering solutions – from generator sales and servicing, engine spare parts, to installation and project maintenance.",

	ServicesTitle:     "Our Services",
	PortfolioTitle:    "Our Projects",
	TestimonialsTitle: "What Our Clients Say",
	PartnersTitle:     "Trusted by Leading Organizations",

	ProductsTitle:         "Featured Products",
	ProductsSubtitle:      "Genuine spare parts for diesel engines and generators",
	ProductsViewAll:       "View All Products",
	ProductsInStock:       "In Stock",
	ProductsLowStock:      "Low Stock",
	ProductsOutOfStock:    "Out of Stock",
	ProductsAvailableSoon: "Available Soon",
	ProductsRequestQuote:  "Request Quote",
	ProductsAddToQuote:    "Add to Quote",
	ProductsNoneFound:     "No products found",

	CartTitle:   "Quote Request",
	CartEmpty:   "Your quote list is empty",
	CartTotal:   "Estimated Total",
	CartSubmit:  "Submit Quote Request",
	CartCleared: "Quote list cleared",

	ContactTitle:       "Get in Touch",
	ContactFormName:    "Name",
	ContactFormEmail:   "Email",
	ContactFormPhone:   "Phone",
	ContactFormCompany: "Company",
	ContactFormType:    "Request Type",
	ContactFormProduct: "Product/Service of Interest",
	ContactFormMessage: "Message",
	ContactFormSubmit:  "Send Request",
	ContactSuccess:     "Thank you! We will respond within 24 hours.",
	ContactError:       "Please fill in all required fields correctly.",
	ContactWhatsApp:    "Chat on WhatsApp",

	ErrRequired:       "Required",
	ErrInvalidEmail:   "Invalid email address",
	ErrContactChannel: "Provide an email address or a phone number",
	ErrSearchFailed:   "Search is temporarily unavailable, please try again",
	ErrSubmitFailed:   "Something went wrong, please try again",

	QuoteCreated: "Quote request received",
}

var sw = map[Key]string{
	NavHome:      "Nyumbani",
	NavProducts:  "Bidhaa",
	NavServices:  "Huduma",
	NavPortfolio: "Miradi",
	NavContact:   "Wasiliana",

	HeroHeadline:    "Wings Engineering Services Ltd – Huduma za Uhandisi wa Umeme na Mitambo Thika",
	HeroSubheadline: "Jenereta • Injini • Vipuri • Usakinishaji • Matengenezo",
	HeroCTAQuote:    "Pata Nukuu",
	HeroCTACall:     "Piga +254 718 234 222",

	AboutTitle:   "Kuhusu Wings Engineering Services Ltd",
	AboutContent: "Wings Engineering Services Ltd ni kampuni ya uhandisi yenye makao yake Thika inayotoa ufumbuzi wa uhandisi wa mitambo na umeme – kutoka mauzo ya jenereta na huduma, vipuri vya injini, hadi usakinishaji na matengenezo ya miradi.",

	ServicesTitle:     "Huduma Zetu",
	PortfolioTitle:    "Miradi Yetu",
	TestimonialsTitle: "Wateja Wetu Wanasema Nini",
	PartnersTitle:     "Tunaminika na Mashirika Makubwa",

	ProductsTitle:         "Bidhaa Maarufu",
	ProductsSubtitle:      "Vipuri halisi vya injini za dizeli na jenereta",
	ProductsViewAll:       "Tazama Bidhaa Zote",
	ProductsInStock:       "Ipo Stoo",
	ProductsLowStock:      "Stoo Inakaribia Kuisha",
	ProductsOutOfStock:    "Imeisha Stoo",
	ProductsAvailableSoon: "Itapatikana Hivi Karibuni",
	ProductsRequestQuote:  "Omba Nukuu",
	ProductsAddToQuote:    "Ongeza kwenye Nukuu",
	ProductsNoneFound:     "Hakuna bidhaa zilizopatikana",

	CartTitle:   "Ombi la Nukuu",
	CartEmpty:   "Orodha yako ya nukuu ni tupu",
	CartTotal:   "Jumla ya Makadirio",
	CartSubmit:  "Tuma Ombi la Nukuu",
	CartCleared: "Orodha ya nukuu imefutwa",

	ContactTitle:       "Wasiliana Nasi",
	ContactFormName:    "Jina",
	ContactFormEmail:   "Barua Pepe",
	ContactFormPhone:   "Simu",
	ContactFormCompany: "Kampuni",
	ContactFormType:    "Aina ya Ombi",
	ContactFormProduct: "Bidhaa/Huduma ya Kupendeza",
	ContactFormMessage: "Ujumbe",
	ContactFormSubmit:  "Tuma Ombi",
	ContactSuccess:     "Asante! Tutajibu ndani ya masaa 24.",
	ContactError:       "Tafadhali jaza sehemu zote zinazohitajika kwa usahihi.",
	ContactWhatsApp:    "Piga Simu kwa WhatsApp",

	ErrRequired:       "Inahitajika",
	ErrInvalidEmail:   "Barua pepe si sahihi",
	ErrContactChannel: "Weka barua pepe au namba ya simu",
	ErrSearchFailed:   "Utafutaji haupatikani kwa sasa, tafadhali jaribu tena",
	ErrSubmitFailed:   "Hitilafu imetokea, tafadhali jaribu tena",

	QuoteCreated: "Ombi la nukuu limepokelewa",
}

var tables = map[string]map[Key]string{"en": en, "sw": sw}

// DetectLanguage picks en or sw from an Accept-Language header value.
// English is the default.
func DetectLanguage(header string) string {
	h := strings.ToLower(header)
	for _, part := range strings.Split(h, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "sw" || strings.HasPrefix(tag, "sw-") {
			return "sw"
		}
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return "en"
		}
	}
	return "en"
}

// T returns the translation of code for lang. Unknown languages fall back to
// English; a code missing from both tables renders as itself so the gap is
// visible on the page.
func T(lang string, code Key) string {
	if tbl, ok := tables[lang]; ok {
		if s, ok := tbl[code]; ok {
			return s
		}
	}
	if s, ok := en[code]; ok {
		return s
	}
	return string(code)
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}
