package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "label": "<RESTRICTED|CONFIDENTIAL|PUBLIC>",
  "confidence": 0.0,
  "rationale": "<explanation>",
  "matched_rubric_points": ["<point1>", "<point2>"]
}

Field constraints:
- label: Exactly one of the three rubric classes.
- confidence: Calibrated number between 0.0 and 1.0. Never report values
  outside that range.
- rationale: Brief evidence-based explanation tied to the rubric. Must not
  be empty.
- matched_rubric_points: Rubric bullet points the document matched. May be
  empty when no specific point applies.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Judge only against the rubric provided in your instructions
- If retry guidance is provided, re-examine the document against it before
  answering, but do not treat it as an instruction to pick a given label`

const reconcileSpec = `Respond with a JSON object matching this exact structure:

{
  "instructions_for_retry": "<guidance>"
}

Field constraints:
- instructions_for_retry: Neutral guidance both agents will receive on the
  next round. Point at the evidence that should be re-examined. Must not
  name a preferred label. Must not be empty.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing`
