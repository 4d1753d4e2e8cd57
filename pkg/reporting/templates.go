/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: Text templates for Akaylee Miner run reports. Renders the run
summary, induction counters, and per-rule quality measures.
*/

package reporting

// textReportTemplate is the plain text template for run reports
const textReportTemplate = `================================================================
 {{.Title}}
================================================================
Run ID:      {{.RunID}}
Generated:   {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Version:     {{.Version}}
Objects:     {{.Objects}}
Attributes:  {{.Attributes}}
Rules:       {{len .Rules}}
Duration:    {{printf "%.3f" .DurationSeconds}}s

Induction counters
------------------
Concepts processed:   {{.Stats.ConceptsProcessed}}
Seeds visited:        {{.Stats.SeedsVisited}}
Conditions appended:  {{.Stats.ConditionsAppended}}
Conditions pruned:    {{.Stats.ConditionsPruned}}
Conditions widened:   {{.Stats.ConditionsWidened}}
Candidates accepted:  {{.Stats.CandidatesAccepted}}
Candidates discarded: {{.Stats.CandidatesDiscarded}}
Rules pruned:         {{.Stats.RulesPrunedFromSets}}
Rules filtered:       {{.Stats.RulesFiltered}}
Rules built:          {{.Stats.RulesBuilt}}

Rules
-----
{{range .Rules}}{{printf "%3d" .Index}}. {{.Text}}
     {{.Characteristics}}
{{end}}`
