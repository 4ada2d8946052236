package main

import (
	"context"
	"time"

	"github.com/tracksense/goalnet/internal/app"
)

// GoalNet is a professional-networking backend: email OTP authentication,
// goal tracking, document references, event connections and AI-assisted
// profile summaries.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
