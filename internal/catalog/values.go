package catalog

// Values is the fixed assessment deck: 90 items, 10 per domain. The set is
// versioned with the binary; changing it invalidates in-flight sessions, so
// additions go through a new deck version rather than edits here.
var Values = []ValueItem{
	// Integrity & Character
	{ID: "integrity", Name: "Integrity", Description: "Alignment between words and actions", DomainID: "integrity-character"},
	{ID: "honesty", Name: "Honesty", Description: "Truthfulness in communication", DomainID: "integrity-character"},
	{ID: "honor", Name: "Honor", Description: "Living by a code of principles", DomainID: "integrity-character"},
	{ID: "authenticity", Name: "Authenticity", Description: "Being true to yourself", DomainID: "integrity-character"},
	{ID: "accountability", Name: "Accountability", Description: "Owning outcomes and consequences", DomainID: "integrity-character"},
	{ID: "responsibility", Name: "Responsibility", Description: "Taking ownership of duties", DomainID: "integrity-character"},
	{ID: "dignity", Name: "Dignity", Description: "Inherent worth of every person", DomainID: "integrity-character"},
	{ID: "humility", Name: "Humility", Description: "Accurate self-assessment", DomainID: "integrity-character"},
	{ID: "transparency", Name: "Transparency", Description: "Openness in dealings", DomainID: "integrity-character"},
	{ID: "consistency", Name: "Consistency", Description: "Reliable behavior over time", DomainID: "integrity-character"},

	// Courage & Action
	{ID: "courage", Name: "Courage", Description: "Acting despite fear", DomainID: "courage-action"},
	{ID: "speaking-up", Name: "Speaking-Up", Description: "Voicing truth to power", DomainID: "courage-action"},
	{ID: "perseverance", Name: "Perseverance", Description: "Persistence through difficulty", DomainID: "courage-action"},
	{ID: "resilience", Name: "Resilience", Description: "Bouncing back from setbacks", DomainID: "courage-action"},
	{ID: "initiative", Name: "Initiative", Description: "Taking action without prompting", DomainID: "courage-action"},
	{ID: "decisiveness", Name: "Decisiveness", Description: "Making timely decisions", DomainID: "courage-action"},
	{ID: "adventure", Name: "Adventure", Description: "Seeking new experiences", DomainID: "courage-action"},
	{ID: "boldness", Name: "Boldness", Description: "Taking confident risks", DomainID: "courage-action"},
	{ID: "assertiveness", Name: "Assertiveness", Description: "Standing firm on beliefs", DomainID: "courage-action"},
	{ID: "conviction", Name: "Conviction", Description: "Strong belief in principles", DomainID: "courage-action"},

	// Care & Compassion
	{ID: "care", Name: "Care", Description: "Attentiveness to others' wellbeing", DomainID: "care-compassion"},
	{ID: "compassion", Name: "Compassion", Description: "Feeling with those who suffer", DomainID: "care-compassion"},
	{ID: "empathy", Name: "Empathy", Description: "Understanding others' perspectives", DomainID: "care-compassion"},
	{ID: "kindness", Name: "Kindness", Description: "Benevolent actions toward others", DomainID: "care-compassion"},
	{ID: "generosity", Name: "Generosity", Description: "Giving freely without expectation", DomainID: "care-compassion"},
	{ID: "patience", Name: "Patience", Description: "Calm endurance without complaint", DomainID: "care-compassion"},
	{ID: "forgiveness", Name: "Forgiveness", Description: "Releasing resentment", DomainID: "care-compassion"},
	{ID: "nurturing", Name: "Nurturing", Description: "Fostering growth in others", DomainID: "care-compassion"},
	{ID: "gentleness", Name: "Gentleness", Description: "Soft strength in interactions", DomainID: "care-compassion"},
	{ID: "presence", Name: "Presence", Description: "Being fully attentive in the moment", DomainID: "care-compassion"},

	// Service & Duty
	{ID: "service", Name: "Service", Description: "Contributing to others' needs", DomainID: "service-duty"},
	{ID: "duty", Name: "Duty", Description: "Fulfilling obligations faithfully", DomainID: "service-duty"},
	{ID: "mission", Name: "Mission", Description: "Dedication to a greater purpose", DomainID: "service-duty"},
	{ID: "sacrifice", Name: "Sacrifice", Description: "Giving up for others' benefit", DomainID: "service-duty"},
	{ID: "stewardship", Name: "Stewardship", Description: "Careful management of resources", DomainID: "service-duty"},
	{ID: "citizenship", Name: "Citizenship", Description: "Active participation in community", DomainID: "service-duty"},
	{ID: "volunteerism", Name: "Volunteerism", Description: "Freely giving time and effort", DomainID: "service-duty"},
	{ID: "philanthropy", Name: "Philanthropy", Description: "Generous giving for public good", DomainID: "service-duty"},
	{ID: "legacy", Name: "Legacy", Description: "Creating lasting positive impact", DomainID: "service-duty"},
	{ID: "mentorship", Name: "Mentorship", Description: "Guiding others' development", DomainID: "service-duty"},

	// Excellence & Achievement
	{ID: "excellence", Name: "Excellence", Description: "Striving for the highest quality", DomainID: "excellence-achievement"},
	{ID: "achievement", Name: "Achievement", Description: "Accomplishing meaningful goals", DomainID: "excellence-achievement"},
	{ID: "competence", Name: "Competence", Description: "Demonstrating skill and ability", DomainID: "excellence-achievement"},
	{ID: "standards", Name: "Standards", Description: "Maintaining high expectations", DomainID: "excellence-achievement"},
	{ID: "ambition", Name: "Ambition", Description: "Drive to succeed and improve", DomainID: "excellence-achievement"},
	{ID: "discipline", Name: "Discipline", Description: "Self-control in pursuit of goals", DomainID: "excellence-achievement"},
	{ID: "focus", Name: "Focus", Description: "Concentrated attention on priorities", DomainID: "excellence-achievement"},
	{ID: "efficiency", Name: "Efficiency", Description: "Maximizing results with resources", DomainID: "excellence-achievement"},
	{ID: "recognition", Name: "Recognition", Description: "Acknowledgment of contributions", DomainID: "excellence-achievement"},
	{ID: "mastery", Name: "Mastery", Description: "Deep expertise through practice", DomainID: "excellence-achievement"},

	// Relationship & Connection
	{ID: "trust", Name: "Trust", Description: "Confidence in others' reliability", DomainID: "relationship-connection"},
	{ID: "loyalty", Name: "Loyalty", Description: "Faithful commitment to people", DomainID: "relationship-connection"},
	{ID: "belonging", Name: "Belonging", Description: "Feeling part of a group", DomainID: "relationship-connection"},
	{ID: "family", Name: "Family", Description: "Prioritizing family bonds", DomainID: "relationship-connection"},
	{ID: "friendship", Name: "Friendship", Description: "Valuing close personal bonds", DomainID: "relationship-connection"},
	{ID: "community", Name: "Community", Description: "Connection to local groups", DomainID: "relationship-connection"},
	{ID: "collaboration", Name: "Collaboration", Description: "Working together effectively", DomainID: "relationship-connection"},
	{ID: "respect", Name: "Respect", Description: "Honoring others' worth", DomainID: "relationship-connection"},
	{ID: "inclusion", Name: "Inclusion", Description: "Welcoming all into belonging", DomainID: "relationship-connection"},
	{ID: "communication", Name: "Communication", Description: "Clear exchange of ideas", DomainID: "relationship-connection"},

	// Growth & Development
	{ID: "development", Name: "Development", Description: "Continuous personal improvement", DomainID: "growth-development"},
	{ID: "learning", Name: "Learning", Description: "Acquiring new knowledge", DomainID: "growth-development"},
	{ID: "empowerment", Name: "Empowerment", Description: "Enabling others to act", DomainID: "growth-development"},
	{ID: "curiosity", Name: "Curiosity", Description: "Desire to explore and understand", DomainID: "growth-development"},
	{ID: "innovation", Name: "Innovation", Description: "Creating new solutions", DomainID: "growth-development"},
	{ID: "creativity", Name: "Creativity", Description: "Generating original ideas", DomainID: "growth-development"},
	{ID: "wisdom", Name: "Wisdom", Description: "Applying knowledge with judgment", DomainID: "growth-development"},
	{ID: "open-mindedness", Name: "Open-Mindedness", Description: "Receptivity to new ideas", DomainID: "growth-development"},
	{ID: "adaptability", Name: "Adaptability", Description: "Flexibility in changing conditions", DomainID: "growth-development"},
	{ID: "self-awareness", Name: "Self-Awareness", Description: "Understanding one's own nature", DomainID: "growth-development"},

	// Justice & Fairness
	{ID: "fairness", Name: "Fairness", Description: "Impartial treatment of all", DomainID: "justice-fairness"},
	{ID: "justice", Name: "Justice", Description: "Upholding what is right", DomainID: "justice-fairness"},
	{ID: "equality", Name: "Equality", Description: "Equal worth and opportunity", DomainID: "justice-fairness"},
	{ID: "equity", Name: "Equity", Description: "Fair distribution based on need", DomainID: "justice-fairness"},
	{ID: "rights", Name: "Rights", Description: "Protecting fundamental freedoms", DomainID: "justice-fairness"},
	{ID: "liberty", Name: "Liberty", Description: "Freedom from oppression", DomainID: "justice-fairness"},
	{ID: "safety", Name: "Safety", Description: "Protection from harm", DomainID: "justice-fairness"},
	{ID: "security", Name: "Security", Description: "Stability and freedom from threat", DomainID: "justice-fairness"},
	{ID: "advocacy", Name: "Advocacy", Description: "Speaking up for others' rights", DomainID: "justice-fairness"},
	{ID: "voice", Name: "Voice", Description: "Power to express and be heard", DomainID: "justice-fairness"},

	// Self-Direction & Meaning
	{ID: "freedom", Name: "Freedom", Description: "Autonomy to choose one's path", DomainID: "self-direction-meaning"},
	{ID: "independence", Name: "Independence", Description: "Self-reliance in decisions", DomainID: "self-direction-meaning"},
	{ID: "purpose", Name: "Purpose", Description: "Sense of meaningful direction", DomainID: "self-direction-meaning"},
	{ID: "faith", Name: "Faith", Description: "Trust in something greater", DomainID: "self-direction-meaning"},
	{ID: "gratitude", Name: "Gratitude", Description: "Appreciation for what one has", DomainID: "self-direction-meaning"},
	{ID: "joy", Name: "Joy", Description: "Deep contentment and happiness", DomainID: "self-direction-meaning"},
	{ID: "balance", Name: "Balance", Description: "Harmony among life priorities", DomainID: "self-direction-meaning"},
	{ID: "simplicity", Name: "Simplicity", Description: "Clarity through reduction", DomainID: "self-direction-meaning"},
	{ID: "health", Name: "Health", Description: "Physical and mental wellbeing", DomainID: "self-direction-meaning"},
	{ID: "peace", Name: "Peace", Description: "Inner calm and outer harmony", DomainID: "self-direction-meaning"},
}
