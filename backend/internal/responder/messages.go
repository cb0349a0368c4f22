package responder

import "fmt"

// Obligation tags understood by Render. They are attached by the response policy.
const (
	ObligationDisclaimer = "disclaimer"
	ObligationEnergyNote = "energy_note"
)

// Greetings is the pool a session picks its opening line from.
var Greetings = []string{
	"Hey there! 🚀 Ready to explore the crypto universe?",
	"Welcome to CryptoBuddy! Let's find you some profitable and sustainable crypto gems! 💎",
	"Hi! I'm your crypto sidekick - ask me about trends, sustainability, or investment advice! 🌟",
}

// ExampleQueries are suggested in the help text.
var ExampleQueries = []string{
	"What's the most profitable crypto?",
	"Which crypto is most sustainable?",
	"What should I invest in?",
	"Tell me about Bitcoin",
	"Compare all cryptos",
	"List all available cryptos",
}

const riskNote = "⚠️ **Disclaimer**: Crypto investments are risky - always do your own research!"

const energyNote = "⚡ Heads up: this asset uses a lot of energy. Consider greener alternatives if sustainability matters to you."

// Help is returned for unrecognized queries and the help command.
func Help() string {
	msg := "🤔 I didn't quite understand that! Here's what I can help you with:\n\n💡 **Try asking:**\n"
	for _, q := range ExampleQueries {
		msg += fmt.Sprintf("• %q\n", q)
	}
	return msg + "\nI'm here to help you make informed crypto decisions! 🚀"
}

// Disclaimer is the full investment disclaimer.
func Disclaimer() string {
	return "⚠️ **Investment Disclaimer**\n" +
		"This chatbot provides educational information only. Cryptocurrency investments carry " +
		"significant risks including total loss of capital. Past performance doesn't guarantee " +
		"future results. Always conduct thorough research and consider consulting with financial " +
		"advisors before making investment decisions."
}

// NotFound is returned when a described asset is not in the table.
func NotFound(name string) string {
	return fmt.Sprintf("Sorry, I don't have information about %s in my database.", name)
}

// Farewell ends a session on an exit command.
func Farewell() string {
	return "Thanks for chatting! Happy investing! 🚀💰"
}

// Interrupted ends a session on EOF or interrupt.
func Interrupted() string {
	return "Goodbye! 👋"
}

// Apology replaces the reply when answering a query failed unexpectedly.
func Apology(cause any) string {
	return fmt.Sprintf("Oops! Something went wrong: %v\nLet's try again! 🔄", cause)
}
