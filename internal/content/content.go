package content

// Static informational content for the landing page. English and Swahili
// variants are kept side by side; pick with the Local* helpers.

type Service struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameSW        string   `json:"name_sw"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	DescriptionSW string   `json:"description_sw"`
	Features      []string `json:"features"`
	PriceType     string   `json:"price_type"` // quote, fixed, hourly
	MobileService bool     `json:"mobile_service"`
}

type PortfolioProject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TitleSW     string `json:"title_sw"`
	Client      string `json:"client"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Equipment   string `json:"equipment"`
	Timeline    string `json:"timeline"`
	Outcome     string `json:"outcome"`
}

type Testimonial struct {
	ID         string `json:"id"`
	Quote      string `json:"quote"`
	QuoteSW    string `json:"quote_sw"`
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Rating     int    `json:"rating"`
}

type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Services = []Service{
	{
		ID: "service-generator-sales", Name: "Generator Sales & Hire", NameSW: "Mauzo na Ukodishaji wa Jenereta",
		Category: "sales", Description: "New and refurbished diesel generators. Short-term hire and long-term leasing options for industrial and commercial use.",
		DescriptionSW: "Jenereta mpya na zilizorekebishwa. Ukodishaji wa muda mfupi na mrefu kwa matumizi ya viwanda na biashara.",
		Features:      []string{"Various kVA ratings available", "Industrial & commercial use", "Delivery and setup included", "Flexible rental terms"},
		PriceType:     "quote", MobileService: true,
	},
	{
		ID: "service-engine-repair", Name: "Engine Repair & Spare Parts", NameSW: "Ukarabati wa Injini na Vipuri",
		Category: "repair", Description: "Genuine Lister Petter parts sourcing and mechanical overhaul services. OEM parts, diagnostic services, and engine rebuilds.",
		DescriptionSW: "Upataji wa vipuri halisi vya Lister Petter na huduma za ukarabati. Vipuri vya OEM, huduma za uchunguzi, na ujenzi upya wa injini.",
		Features:      []string{"OEM genuine parts", "Diagnostic services", "Complete engine rebuilds", "Performance testing"},
		PriceType:     "quote", MobileService: true,
	},
	{
		ID: "service-installation", Name: "Installation & Commissioning", NameSW: "Usakinishaji na Kuanzishwa",
		Category: "installation", Description: "Site surveys, electrical integration, and handover for generator and plant installations.",
		DescriptionSW: "Uchunguzi wa tovuti, uunganishaji wa umeme, na mkabala.",
		Features:      []string{"Site surveys", "Electrical integration", "Load testing", "Operator handover"},
		PriceType:     "quote", MobileService: true,
	},
	{
		ID: "service-maintenance", Name: "Preventative Maintenance", NameSW: "Matengenezo ya Kuzuia",
		Category: "maintenance", Description: "Scheduled site visits, testing, and maintenance contracts.",
		DescriptionSW: "Ziara zilizopangwa tovuti, upimaji, na mikataba ya matengenezo.",
		Features:      []string{"Scheduled visits", "Detailed service reports", "Maintenance contracts"},
		PriceType:     "quote", MobileService: true,
	},
	{
		ID: "service-emergency", Name: "Emergency Breakdown Support", NameSW: "Usaidizi wa Dharura wa Kuvunjika",
		Category: "emergency", Description: "Rapid response for critical plant outages. 24/7 availability.",
		DescriptionSW: "Jibu la haraka kwa kukatika kwa umeme muhimu. Upatikanaji 24/7.",
		Features:      []string{"24/7 call-out", "Rapid on-site response", "Critical plant priority"},
		PriceType:     "quote", MobileService: true,
	},
}

var Portfolio = []PortfolioProject{
	{
		ID: "project-1", Title: "Hospital Backup Generator Installation", TitleSW: "Usakinishaji wa Jenereta ya Akiba ya Hospitali",
		Client: "Major Nairobi Hospital", Location: "Nairobi, Kenya", Category: "Installation",
		Description: "Complete installation of a 500kVA Lister Petter diesel generator system for critical hospital backup power.",
		Equipment:   "500kVA Lister Petter Genset", Timeline: "3 days installation + commissioning",
		Outcome: "Reliable 24/7 backup power ensuring uninterrupted patient care",
	},
	{
		ID: "project-2", Title: "Industrial Plant Emergency Repair", TitleSW: "Ukarabati wa Dharura wa Kiwanda",
		Client: "Manufacturing Facility", Location: "Thika, Kenya", Category: "Emergency Repair",
		Description: "Emergency diesel engine repair for critical production equipment with two-hour response.",
		Equipment:   "Lister Petter LPW4 Engine", Timeline: "Same-day technician dispatch",
		Outcome: "Production restored within 8 hours - minimal downtime",
	},
	{
		ID: "project-3", Title: "University Campus Generator Rental", TitleSW: "Ukodishaji wa Jenereta wa Chuo Kikuu",
		Client: "Local University", Location: "Nairobi, Kenya", Category: "Rental",
		Description: "100kVA mobile generator rental for a major campus event, including delivery, setup, and fuel service.",
		Equipment:   "100kVA Mobile Generator", Timeline: "1-week rental with fuel service",
		Outcome: "Seamless power for 3-day campus event with zero interruptions",
	},
}

var Testimonials = []Testimonial{
	{
		ID:    "testimonial-1",
		Quote: "Wings Engineering provided exceptional service during our emergency generator failure. Their technician arrived within 2 hours and had us back online the same day.",
		QuoteSW: "Wings Engineering ilitoa huduma bora wakati wa kushindwa kwa jenereta yetu ya dharura. Fundi wao aliwasili ndani ya masaa 2 na kuturudisha mtandaoni siku hiyo hiyo.",
		ClientName: "John Kamau", Company: "Thika Manufacturing Ltd", Role: "Facilities Manager", Rating: 5,
	},
	{
		ID:    "testimonial-2",
		Quote: "We have been sourcing our Lister Petter spare parts from Wings Engineering for over 5 years. Their parts are always genuine, prices are competitive, and delivery is prompt.",
		QuoteSW: "Tumekuwa tukipata vipuri vyetu vya Lister Petter kutoka Wings Engineering kwa zaidi ya miaka 5. Vipuri vyao ni halisi kila wakati, bei ni shindani, na utoaji ni wa haraka.",
		ClientName: "Mary Wanjiku", Company: "Nairobi Industrial Supplies", Role: "Procurement Officer", Rating: 5,
	},
	{
		ID:    "testimonial-3",
		Quote: "The installation team was professional and thorough. They completed our 200kVA generator installation ahead of schedule and provided comprehensive training for our staff.",
		QuoteSW: "Timu ya usakinishaji ilikuwa ya kitaalamu na makini. Walikamilisha usakinishaji wetu wa jenereta ya 200kVA kabla ya ratiba na kutoa mafunzo kamili kwa wafanyakazi wetu.",
		ClientName: "Peter Ochieng", Company: "Mombasa Port Authority", Role: "Technical Director", Rating: 5,
	},
}

var Partners = []Partner{
	{ID: "lister-petter", Name: "Lister Petter", Description: "Primary Engine Partner"},
	{ID: "davis-shirtliff", Name: "Davis & Shirtliff", Description: "Engineering Partner"},
	{ID: "kenya-power", Name: "Kenya Power", Description: "Utility Partner"},
	{ID: "kebs", Name: "KEBS", Description: "Standards Certification"},
	{ID: "nema", Name: "NEMA", Description: "Environmental Compliance"},
}

// LocalName returns the service name for lang.
func (s Service) LocalName(lang string) string {
	if lang == "sw" && s.NameSW != "" {
		return s.NameSW
	}
	return s.Name
}

// LocalDescription returns the service description for lang.
func (s Service) LocalDescription(lang string) string {
	if lang == "sw" && s.DescriptionSW != "" {
		return s.DescriptionSW
	}
	return s.Description
}

// LocalQuote returns the testimonial text for lang.
func (t Testimonial) LocalQuote(lang string) string {
	if lang == "sw" && t.QuoteSW != "" {
		return t.QuoteSW
	}
	return t.Quote
}

// LocalTitle returns the project title for lang.
func (p PortfolioProject) LocalTitle(lang string) string {
	if lang == "sw" && p.TitleSW != "" {
		return p.TitleSW
	}
	return p.Title
}
