// Package agenteval is a Go client for the agent evaluation service.
//
// A Client wraps the service's REST API and exposes one service per
// resource: Agents, TestSuites, Evaluations and Webhooks. Evaluations
// returned by the client stay attached to it, so their status can be
// re-fetched with Refresh or polled to a terminal state with
// WaitForCompletion.
//
// Basic usage:
//
//	client, err := agenteval.New("secret-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	agent, err := client.Agents.Create(ctx, agenteval.CreateAgentParams{Name: "Support Bot", Model: "gpt-4"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	eval, err := client.Evaluations.Create(ctx, agent.ID, "suite_001", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := eval.WaitForCompletion(ctx, 5*time.Minute)
package agenteval
