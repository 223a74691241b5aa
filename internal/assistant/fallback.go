package assistant

import (
	"math/rand/v2"
	"strings"
)

// fallbackRule pairs a predicate over the lower-cased user text with the
// canned responses for that topic. Rules are evaluated in order; the first
// match wins.
type fallbackRule struct {
	matches   func(lower string) bool
	responses []string
}

func keywordAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

const javaFallback = "☕ **Java Programming Language**\n\n" +
	"Java is one of the most popular programming languages! It's platform-independent, object-oriented, and great for enterprise applications.\n\n" +
	"🔥 **Key Features:**\n" +
	"• Write once, run anywhere (WORA)\n" +
	"• Strong memory management\n" +
	"• Rich API and libraries\n" +
	"• Excellent for large-scale applications\n\n" +
	"📝 **Basic Syntax:**\n" +
	"```java\npublic class HelloWorld {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}\n```\n\n" +
	"Would you like me to explain any specific Java concept in detail? 🚀"

const pythonFallback = "🐍 **Python Programming**\n\n" +
	"Python is known for its simplicity and readability! Perfect for beginners and powerful for experts.\n\n" +
	"✨ **Why Python?**\n" +
	"• Easy to learn and read\n" +
	"• Versatile (web, AI, data science)\n" +
	"• Huge community and libraries\n" +
	"• Great for rapid prototyping\n\n" +
	"📝 **Quick Example:**\n" +
	"```python\nname = \"Kiran\"\nprint(f\"Hello, {name}!\")\n\n# List comprehension\nsquares = [x**2 for x in range(10)]\nprint(squares)\n```\n\n" +
	"What specific Python topic interests you? 🚀"

const javascriptFallback = "🌐 **JavaScript - The Language of the Web**\n\n" +
	"JavaScript powers the modern web and much more!\n\n" +
	"⚡ **What makes JS special:**\n" +
	"• Runs everywhere (browsers, servers, mobile)\n" +
	"• Dynamic and flexible\n" +
	"• Huge ecosystem (npm)\n" +
	"• Essential for web development\n\n" +
	"📝 **Modern JavaScript:**\n" +
	"```javascript\n// ES6+ features\nconst greet = (name) => `Hello, ${name}!`;\n\n// Async/await\nconst fetchData = async () => {\n  const response = await fetch('/api/data');\n  return response.json();\n};\n```\n\n" +
	"Want to dive deeper into any JS concept? 🚀"

// fallbackCatalog is the ordered rule list consulted when the backend is
// unconfigured or fails. Java is checked before JavaScript and must
// exclude it, since "javascript" contains "java" as a substring.
var fallbackCatalog = []fallbackRule{
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "java") && !strings.Contains(lower, "javascript")
		},
		responses: []string{javaFallback},
	},
	{
		matches:   keywordAny("python"),
		responses: []string{pythonFallback},
	},
	{
		matches:   keywordAny("javascript"),
		responses: []string{javascriptFallback},
	},
	{
		matches: keywordAny("hello", "hi", "hey"),
		responses: []string{
			"Hello! Great to see you today! How can I help you?",
			"Hi there! I'm excited to chat with you. What's on your mind?",
			"Hey! Welcome! I'm here and ready to assist you with anything you need.",
			"Hello! It's wonderful to meet you. How can I make your day better?",
		},
	},
	{
		matches: keywordAny("joke", "funny"),
		responses: []string{
			"Why don't scientists trust atoms? Because they make up everything! 😄 Want to hear another one?",
			"I told my wife she was drawing her eyebrows too high. She looked surprised! 😂 Hope that made you smile!",
			"Why did the scarecrow win an award? He was outstanding in his field! 🌾 Got any other requests?",
			"What do you call a fake noodle? An impasta! 🍝 I've got plenty more where that came from!",
		},
	},
	{
		matches: keywordAny("weather"),
		responses: []string{
			"I'd love to help you with the weather! However, I don't have access to real-time weather data right now. I'd recommend checking your local weather app or website for the most accurate forecast. Is there anything else I can help you with?",
		},
	},
	{
		matches: keywordAny("remind"),
		responses: []string{
			"I'd be happy to help with reminders! While I can't actually set system reminders right now, I can suggest using your phone's built-in reminder app or calendar. What would you like to be reminded about?",
		},
	},
	{
		matches: keywordAny("help", "explain", "understand"),
		responses: []string{
			"I'm here to help! I love explaining things in a clear, friendly way. Could you tell me which specific topic you'd like me to explain? I'll do my best to break it down for you.",
		},
	},
	{
		matches: keywordAny("thank", "great", "awesome"),
		responses: []string{
			"You're so welcome! It makes me happy to help. Is there anything else you'd like to chat about?",
			"Aww, thank you! That really brightens my day. I'm always here if you need anything else!",
			"You're too kind! I'm just glad I could be helpful. What else can we talk about?",
			"Thank you so much! I really enjoy our conversation. Feel free to ask me anything else!",
		},
	},
	{
		matches: keywordAny("who are you", "what are you"),
		responses: []string{
			"I'm your friendly AI assistant! I'm designed to be helpful, patient, and understanding - kind of like having a knowledgeable friend who's always ready to chat. I can help with questions, explanations, jokes, and just friendly conversation. What would you like to know about me?",
		},
	},
}

var defaultFallbacks = []string{
	"I'd love to help you with that! While I'm working on connecting to more advanced AI capabilities, I can still assist with programming questions, explanations, and general conversation. Could you rephrase your question or let me know what specific aspect you'd like to explore? 😊",
	"That's interesting! I'd love to hear more about that. Could you tell me a bit more?",
	"I appreciate you sharing that with me! What would you like to explore about this topic?",
	"That sounds fascinating! I'm here to help however I can. What specific aspect would you like to discuss?",
	"Thanks for bringing that up! I'm curious to learn more. How can I best assist you with this?",
}

// fallbackResponse selects a canned reply for the original (untruncated,
// un-composed) user text. pick chooses an index in [0, n); production code
// passes rand.IntN, tests pass a fixed function.
func fallbackResponse(userText string, pick func(n int) int) string {
	if pick == nil {
		pick = rand.IntN
	}
	lower := strings.ToLower(userText)
	for _, rule := range fallbackCatalog {
		if rule.matches(lower) {
			return rule.responses[pick(len(rule.responses))]
		}
	}
	return defaultFallbacks[pick(len(defaultFallbacks))]
}
