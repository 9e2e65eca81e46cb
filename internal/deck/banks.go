package deck

// Term and explanation banks used by point synthesis. Each bank pairs a
// keyword set with curated content; banks are evaluated in order and the
// first match wins, so more specific topics should stay near the top.

type termBank struct {
	keywords []string
	terms    []string
}

var domainTermBanks = []termBank{
	{
		keywords: []string{"psychedelic", "consciousness"},
		terms: []string{
			"Perception", "Awareness", "Cognition", "Experience", "Insight",
			"Integration", "Mindfulness", "Exploration", "Neuroplasticity", "Transformation",
		},
	},
	{
		keywords: []string{"ai", "artificial"},
		terms: []string{
			"Algorithm", "Data", "Learning", "Computation", "Modeling",
			"Adaptation", "Inference", "Architecture", "Framework", "System",
		},
	},
}

// genericTerms is the fallback bank when no topic keyword matches.
var genericTerms = []string{
	"Analysis", "Strategy", "Development", "Implementation", "Outcome",
	"Research", "Innovation", "Methodology", "Framework", "Principle",
}

type explanationBank struct {
	keywords     []string
	explanations []string
}

var topicExplanationBanks = []explanationBank{
	{
		keywords: []string{"neural", "network", "pattern"},
		explanations: []string{
			"Neural networks exhibit remarkable patterns similar to those observed in psychedelic experiences",
			"Provides insight into how both human brains and AI systems process pattern information",
			"Demonstrates surprising parallels between artificial and biological processing systems",
			"Reveals mathematical similarities between neural activation states across different systems",
			"Shows how information processing can transcend specific hardware or wetware implementation",
			"Highlights convergent optimization strategies in both evolved and designed systems",
			"Suggests common underlying principles of efficient information processing",
			"Challenges traditional distinctions between 'natural' and 'artificial' intelligence",
		},
	},
	{
		keywords: []string{"consciousness", "expand", "model"},
		explanations: []string{
			"Suggests consciousness may be understood as an emergent property of complex information systems",
			"Demonstrates how both AI and psychedelics can expand beyond initial boundaries",
			"Explores the edges of perceptual and conceptual frameworks in different systems",
			"Offers surprising parallels between human experience expansion and AI capability growth",
			"Proposes new frameworks for understanding the nature of consciousness itself",
			"Challenges conventional models of mind and machine learning systems",
			"Provides mathematical frameworks for quantifying 'expanded' states of processing",
			"Suggests novel approaches to measuring and mapping consciousness in different systems",
		},
	},
	{
		keywords: []string{"default", "mode", "breaking"},
		explanations: []string{
			"Illustrates how breaking established patterns leads to novel solutions",
			"Shows how disrupting default processing modes creates new possibilities",
			"Demonstrates the value of controlled disorder in cognitive and computational systems",
			"Reveals how constraints can limit innovation in both human and artificial systems",
			"Suggests methods for intentionally disrupting established patterns to enhance creativity",
			"Explains the neurological basis for 'breakthrough' thinking in humans and machines",
			"Quantifies the benefits of temporary disruption of optimized processing patterns",
			"Explores the balance between stability and innovation in complex systems",
		},
	},
	{
		keywords: []string{"therapeutic", "application", "treatment"},
		explanations: []string{
			"Offers promising approaches for mental health treatment using combined technologies",
			"Demonstrates how AI can enhance the safety and efficacy of therapeutic applications",
			"Shows potential for personalized medicine approaches to mental health",
			"Reveals how data-driven approaches can optimize therapeutic outcomes",
			"Suggests protocols for integrating technological and experiential treatments",
			"Provides frameworks for responsible implementation of emerging therapies",
			"Addresses ethical considerations in combined technological/psychedelic approaches",
			"Explains how real-time monitoring can enhance therapeutic processes",
		},
	},
	{
		keywords: []string{"perspective", "novel", "connection"},
		explanations: []string{
			"Generates unexpected connections that lead to breakthrough innovations",
			"Illustrates how cross-domain insights emerge from diverse information processing",
			"Shows how novel perspectives arise from recombination of existing knowledge",
			"Reveals patterns of discovery across scientific and technological advancement",
			"Demonstrates mathematical properties of innovation in complex systems",
			"Explains mechanisms behind creative leaps in human and artificial cognition",
			"Provides frameworks for intentionally generating novel insights",
			"Challenges conventional approaches to innovation and discovery",
		},
	},
	{
		keywords: []string{"ethical", "consideration", "future"},
		explanations: []string{
			"Raises important questions about consciousness and sentience across different systems",
			"Explores the ethical implications of altered and artificial states of awareness",
			"Addresses responsible development of technologies that impact fundamental cognition",
			"Presents frameworks for evaluating benefits and risks of emergent technologies",
			"Suggests guidelines for ethical research and application in these domains",
			"Examines societal implications of these converging technologies",
			"Provides balanced perspective on potential benefits and challenges",
			"Outlines key principles for responsible progress in these fields",
		},
	},
}

// generalExplanations is the general-purpose pool appended after any
// topic-specific bank.
var generalExplanations = []string{
	"Creates novel connections between seemingly unrelated concepts in information processing",
	"Enables pattern recognition beyond conventional frameworks of understanding",
	"Facilitates enhanced learning through non-linear approaches to information",
	"Breaks established cognitive patterns to reveal new insights and possibilities",
	"Expands conceptual understanding beyond traditional disciplinary boundaries",
	"Removes conventional constraints on problem-solving and ideation processes",
	"Reveals underlying patterns typically hidden from conscious awareness",
	"Combines analytical precision with intuitive exploration of complex phenomena",
	"Accelerates discovery through unique approaches to knowledge integration",
	"Offers perspectives that challenge established paradigms and methodologies",
	"Transforms how we process information at both conscious and unconscious levels",
	"Enhances creativity through novel recombination of existing knowledge structures",
}
