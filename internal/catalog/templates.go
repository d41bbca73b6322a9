package catalog

import (
	"fmt"
	"strings"
)

// GoalTemplate is a reusable scaffold a user can start from instead of typing an idea.
// Placeholders are written in square brackets, e.g. [problem description].
type GoalTemplate struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Template string `json:"template"`
}

var goalTemplates = []GoalTemplate{
	{Value: NoneKey, Label: "None (Start from scratch)", Template: ""},
	{
		Value:    "solve_problem",
		Label:    "Solve a Problem",
		Template: "I want to find a solution for [problem description] that affects [target audience/system], considering constraints like [key constraints] and aiming for an outcome of [desired outcome].",
	},
	{
		Value:    "create_something",
		Label:    "Create Something New",
		Template: "I need to create a [type of creation, e.g., marketing plan, short video script, product concept] for [topic/purpose] targeting [audience]. Key elements to include are [element 1], [element 2], and it should evoke a feeling of [desired feeling/style].",
	},
	{
		Value:    "explain_concept",
		Label:    "Explain a Concept",
		Template: "Explain the concept of [concept name] to a [target audience, e.g., beginner, expert in another field]. The explanation should cover [key aspect 1], [key aspect 2], and use an analogy of [optional analogy].",
	},
	{
		Value:    "compare_contrast",
		Label:    "Compare & Contrast",
		Template: "Compare and contrast [item 1] and [item 2] based on criteria such as [criterion 1], [criterion 2], and [criterion 3]. Highlight the key differences and similarities for [purpose of comparison].",
	},
}

// GoalTemplates returns every goal template, the empty NONE template first.
func GoalTemplates() []GoalTemplate {
	out := make([]GoalTemplate, len(goalTemplates))
	copy(out, goalTemplates)
	return out
}

// LookupGoalTemplate finds a template by value key (case-insensitive).
func LookupGoalTemplate(value string) (GoalTemplate, error) {
	v := strings.TrimSpace(value)
	for _, tpl := range goalTemplates {
		if strings.EqualFold(tpl.Value, v) {
			return tpl, nil
		}
	}
	return GoalTemplate{}, fmt.Errorf("unknown goal template %q", value)
}

// IsNone reports whether the template is the empty "start from scratch" entry.
func (g GoalTemplate) IsNone() bool {
	return g.Value == NoneKey || g.Template == ""
}

// TaskExample shows a basic idea next to what a good enhanced prompt for it looks like.
type TaskExample struct {
	Task                TaskType `json:"task"`
	Name                string   `json:"name"`
	Basic               string   `json:"basic"`
	EnhancedPlaceholder string   `json:"enhanced_placeholder"`
}

var taskExamples = map[TaskType]TaskExample{
	TaskEmailComposition: {
		Name:                "Email Composition",
		Basic:               "Write an email to my team about the new project deadline.",
		EnhancedPlaceholder: "Subject: Project Phoenix Deadline Update\n\nHi Team,\n\nPlease note the revised deadline for Project Phoenix is now EOD Friday, [Date]. This change is due to [Reason for change]. Please adjust your individual tasks and priorities accordingly. Key deliverables that must be completed by this new deadline include [Deliverable 1] and [Deliverable 2]. If you foresee any challenges, discuss them in the team chat by EOD tomorrow.\n\nThanks,\n[Your Name]",
	},
	TaskCodeGeneration: {
		Name:                "Code Generation",
		Basic:               "Python function to read a CSV and return a list of dictionaries.",
		EnhancedPlaceholder: "Create a Python function named `read_csv_to_dicts` that accepts a file path string as an argument. The function should open and read the specified CSV file, assume the first row is the header, and return a list of dictionaries. Each dictionary in the list should represent a row, with keys corresponding to header names and values to cell content. Implement robust error handling for `FileNotFoundError` and basic CSV parsing errors. Include type hints for arguments and return type. Add a concise docstring explaining its purpose, arguments, and return value.",
	},
	TaskImageCreation: {
		Name:                "Image Description",
		Basic:               "A cat wearing a hat.",
		EnhancedPlaceholder: "Hyperrealistic digital painting, award-winning fantasy art style: A fluffy ginger tabby cat with piercing emerald green eyes and a subtly curious expression, wearing a miniature, deep sapphire blue top hat. The hat is tilted jauntily to one side and has a small, silver buckle detail. Soft, warm directional lighting from the left creates gentle highlights on its fur and casts soft shadows. The background is a richly detailed, blurred cozy library with visible rows of leather-bound books and a hint of a fireplace glow. Focus on intricate fur texture and realistic lighting.",
	},
	TaskStoryWriting: {
		Name:                "Story Writing",
		Basic:               "A short story about a lost robot.",
		EnhancedPlaceholder: "Write a heartwarming short story (approx. 500-700 words) for young adults (ages 13-16) about a small, solar-powered sanitation robot named Bolt, unit 734. Bolt, known for his meticulous cleaning and quiet optimism, gets separated from his inventor, an elderly woman named Elara, during a vibrant and chaotic city-wide Spring Festival. Bolt must navigate unfamiliar, crowded streets, encountering diverse characters along the way. The story should explore themes of courage in unfamiliar situations, unexpected bonds of friendship, and the true meaning of 'home.' End the story on a hopeful, slightly bittersweet note.",
	},
	TaskContentSummarization: {
		Name:                "Content Summarization",
		Basic:               "Summarize this article about climate change.",
		EnhancedPlaceholder: "Provide a concise executive summary (target 150-200 words) of the provided text concerning climate change. The summary must accurately identify and highlight: 1. The primary causes discussed. 2. The most significant key impacts identified (environmental, social, economic). 3. Any proposed solutions, mitigation strategies, or urgent calls to action mentioned. Ensure the summary maintains a neutral, objective tone and faithfully reflects the core message and emphasis of the original content. The text to summarize is: [User to paste text here after this prompt is generated]",
	},
	TaskTranslation: {
		Name:                "Translate Text",
		Basic:               "Translate 'Hello, how are you?' to Spanish.",
		EnhancedPlaceholder: "Translate the following English business communication phrase into formal, professional Spanish suitable for addressing a potential client you haven't met: 'Hello, I hope this email finds you well. I am writing to follow up on our previous conversation and to inquire if you've had a chance to review the proposal we sent last week. Please let me know if you have any questions.' Ensure the translation captures the politeness and professional intent.",
	},
	TaskBrainstormingIdeas: {
		Name:                "Brainstorm Ideas",
		Basic:               "Ideas for a new mobile app.",
		EnhancedPlaceholder: "Brainstorm 5 distinct and innovative mobile app ideas specifically targeting sustainable living and eco-conscious consumers. For each idea, provide: \n1. A catchy App Name. \n2. A brief Concept (1-2 sentences). \n3. Three Key Features. \n4. A potential Monetization Strategy (e.g., freemium, subscription, ethical ad partnerships). \nFocus on apps that solve common pain points or offer unique value in areas like waste reduction, ethical consumption, local eco-friendly discovery, or carbon footprint tracking.",
	},
	TaskQuestionAnswering: {
		Name:                "Answer a Question",
		Basic:               "Why is the sky blue?",
		EnhancedPlaceholder: "Explain in clear, accessible, and scientifically accurate terms, suitable for a curious 10-year-old, the phenomenon of why the sky appears blue during the daytime. Your explanation should cover the concepts of: \n1. Sunlight being composed of different colors of light. \n2. The Earth's atmosphere and its composition (gases and particles). \n3. The process of Rayleigh scattering, emphasizing how blue light is scattered more effectively than other colors. \nUse a simple analogy if possible to aid understanding. Avoid overly technical jargon.",
	},
}

// ExampleFor returns the worked example for a task type.
func ExampleFor(t TaskType) (TaskExample, bool) {
	ex, ok := taskExamples[t]
	if !ok {
		return TaskExample{}, false
	}
	ex.Task = t
	return ex, true
}

// TaskExamples returns one example per task type, in task display order.
func TaskExamples() []TaskExample {
	out := make([]TaskExample, 0, len(taskTypes))
	for _, opt := range taskTypes {
		if ex, ok := ExampleFor(opt.Value); ok {
			out = append(out, ex)
		}
	}
	return out
}
