package core

import "fmt"

// Greeting formats salutations.
type Greeting struct{}

// NewGreeting creates a new Greeting.
func NewGreeting() *Greeting {
	return &Greeting{}
}

// SayHello returns "Hello, {name}!".
func (g *Greeting) SayHello(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Hello, %s!", name), nil
}

// SayGoodbye returns "Goodbye, {name}!".
func (g *Greeting) SayGoodbye(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Goodbye, %s!", name), nil
}

// GreetingWithTime returns "Good {timeOfDay}, {name}!".
// The name is validated before the time of day.
func (g *Greeting) GreetingWithTime(name, timeOfDay string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Good %s, %s!", t, name), nil
}
