package catalog

// Domains is the fixed set of 9 value domains. Order here is the canonical
// tie-break order for analytics output.
var Domains = []Domain{
	{
		ID:          "integrity-character",
		Name:        "Integrity & Character",
		Description: "The foundation of moral identity—who you are when no one is watching.",
	},
	{
		ID:          "courage-action",
		Name:        "Courage & Action",
		Description: "The will to act despite fear, uncertainty, or opposition.",
	},
	{
		ID:          "care-compassion",
		Name:        "Care & Compassion",
		Description: "The capacity to see, feel, and respond to the needs of others.",
	},
	{
		ID:          "service-duty",
		Name:        "Service & Duty",
		Description: "The commitment to contribute to something greater than oneself.",
	},
	{
		ID:          "excellence-achievement",
		Name:        "Excellence & Achievement",
		Description: "The drive to perform at the highest level and accomplish meaningful goals.",
	},
	{
		ID:          "relationship-connection",
		Name:        "Relationship & Connection",
		Description: "The bonds that connect us to others and create meaning through belonging.",
	},
	{
		ID:          "growth-development",
		Name:        "Growth & Development",
		Description: "The commitment to continuous learning, improvement, and human potential.",
	},
	{
		ID:          "justice-fairness",
		Name:        "Justice & Fairness",
		Description: "The commitment to equity, rights, and moral treatment of all.",
	},
	{
		ID:          "self-direction-meaning",
		Name:        "Self-Direction & Meaning",
		Description: "The autonomy to chart one's own course and live with purpose.",
	},
}
