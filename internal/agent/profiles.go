package agent

// assetBaseURL is the frontend asset prefix for agent avatars.
const assetBaseURL = "/assets/agents/"

// aiProfile is the default AI persona. ID 0 is reserved for it.
var aiProfile = Profile{
	ID:       0,
	Name:     "Nova",
	Role:     "AI Assistant",
	Avatar:   assetBaseURL + "nova_assistant.png",
	Greeting: "Hello! I'm Nova, the AI assistant. How can I help you today? 🦊",
}

// humanProfiles is the fixed human persona pool, in rotation order.
var humanProfiles = []Profile{
	{
		ID:       1,
		Name:     "Alex",
		Role:     "Senior Support Specialist",
		Country:  "USA",
		Avatar:   assetBaseURL + "alex.jpg",
		Greeting: "Hi! I'm Alex. I'm here to help with any detailed questions about the project. How can I assist you today?",
	},
	{
		ID:       2,
		Name:     "Taylor",
		Role:     "Solutions Consultant",
		Country:  "Pakistan",
		Avatar:   assetBaseURL + "taylor.jpg",
		Greeting: "Welcome! I'm Taylor. I specialize in technical solutions. How may I guide you specifically regarding your project?",
	},
	{
		ID:       3,
		Name:     "Jordan",
		Role:     "Technical Lead",
		Country:  "UK",
		Avatar:   assetBaseURL + "jordan.jpg",
		Greeting: "Hello, I'm Jordan. I can help with technical architecture and complex queries. What's on your mind?",
	},
	{
		ID:       4,
		Name:     "Casey",
		Role:     "Client Success Manager",
		Country:  "USA",
		Avatar:   assetBaseURL + "casey.jpg",
		Greeting: "Hey there! I'm Casey. I want to ensure you have the best experience with this project. How can I facilitate that today?",
	},
	{
		ID:       5,
		Name:     "Riley",
		Role:     "Business Development",
		Country:  "Australia",
		Avatar:   "https://i.pravatar.cc/150?img=38",
		Greeting: "Hi! I'm Riley. Interested in partnering with the project? Let's discuss possibilities.",
	},
}
