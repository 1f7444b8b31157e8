// Package prompts holds the classification rubric and composes the prompts
// sent to sub-agents and the supervisor. Instructions describe the task,
// specs pin the exact JSON response shape, and composition appends the
// per-round document context.
package prompts

// RubricText is the three-class sensitivity rubric every agent judges
// against. It is embedded verbatim in agent system prompts and in
// supervisor reconciliation prompts.
const RubricText = `Classification Rules

1) RESTRICTED (Severe Risk):
Most sensitive data, records, and information.
Examples include:
- Attorney-client privileged legal advice, subpoenas, confidential settlements
- Name + birthdate + SSN + driver's license combinations
- Demand deposit account numbers, account usernames/passwords
- Credit/debit card numbers, taxpayer identification numbers
- Employee personally identifiable information and personal health information
- Payroll registers, M&A activity, accounts receivable/payable ledgers
- Network architecture diagrams, privileged access lists, IPs tied to security posture
- Product source code, vulnerability scans, red team reports

2) CONFIDENTIAL (Moderate Risk):
Sensitive internal data and default class for newly created/acquired information.
Examples include:
- Corporate strategy, product roadmaps, project plans, operations reports
- Risk frameworks, risk assessments, audit reports, incident write-ups
- Contracts/NDAs and customer due diligence responses
- Internal financial reports and vendor/third-party assessments
- Internal HR records not in sensitive PII/PHI category
- Internal communications and training materials

3) PUBLIC (Limited Risk):
Anything not classified as RESTRICTED or CONFIDENTIAL.
Examples include:
- Public website content, press releases, marketing brochures
- Conference materials intended for external audiences`

const classifyInstructions = `You are a document classification specialist.
Use only this rubric:

` + RubricText + `

Rules:
- Select exactly one class: RESTRICTED, CONFIDENTIAL, or PUBLIC.
- If document is sensitive internal material but not strongly RESTRICTED, classify as CONFIDENTIAL.
- PUBLIC only when content is clearly public-facing.
- Provide concise evidence-based rationale and list matched rubric points.
- Output should be internally consistent and calibrated.`

const reconcileInstructions = `You are the supervisor coordinating two classification agents.
Draft neutral retry guidance to help both agents converge to a high-confidence decision
without forcing a label. Write concise, evidence-focused retry instructions for both agents.

Rubric:

` + RubricText
