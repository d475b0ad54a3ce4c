package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one coach API call for cost accounting and
// debugging. The app works without a provider; this table is simply empty
// then.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("anthropic, openai, gemini, mock"),
		field.String("model").
			NotEmpty().
			Comment("Model identifier that served the request"),
		field.String("purpose").
			NotEmpty().
			Comment("What the request was for (explain)"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(true),
		field.String("error_message").
			Optional().
			Comment("Failure detail when success is false"),
		field.Text("request_body").
			Optional().
			Comment("Readable rendering of the prompt sent"),
		field.Text("response_body").
			Optional().
			Comment("Raw JSON content returned"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
	}
}
