package web

import (
	"storyuniverse/internal/form"
	"storyuniverse/internal/types"
)

func textarea[T any](name, label, placeholder string, rows int, ref func(*T) *string) form.Field[T] {
	return form.Field[T]{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Widget:      form.WidgetTextarea,
		Rows:        rows,
		Set:         form.Bind(ref),
	}
}

func input[T any](name, label, placeholder string, ref func(*T) *string) form.Field[T] {
	return form.Field[T]{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Widget:      form.WidgetInput,
		Set:         form.Bind(ref),
	}
}

func required[T any](f form.Field[T]) form.Field[T] {
	f.Required = true
	return f
}

func statusOptions() []form.Option {
	opts := make([]form.Option, 0, len(types.StoryStatuses))
	for _, s := range types.StoryStatuses {
		opts = append(opts, form.Option{Value: string(s), Label: s.Title()})
	}

	return opts
}

var storySchema = &form.Schema[types.Story]{Sections: []form.Section[types.Story]{
	{
		Id:    "basic",
		Title: "Basic Information",
		Fields: []form.Field[types.Story]{
			required(input("title", "Story Title", "Enter your story title",
				func(s *types.Story) *string { return &s.Title })),
			input("author", "Author", "Your name",
				func(s *types.Story) *string { return &s.Author }),
		},
	},
	{
		Id:    "structure",
		Title: "Story Structure",
		Fields: []form.Field[types.Story]{
			textarea("structure.genre", "Genre",
				"Describe your genre (e.g., 'Dark fantasy with psychological thriller elements')", 3,
				func(s *types.Story) *string { return &s.Structure.Genre }),
			textarea("structure.theme", "Theme",
				"What's your story really about? (e.g., 'The cost of power', 'Finding identity')", 3,
				func(s *types.Story) *string { return &s.Structure.Theme }),
			textarea("structure.tone", "Tone",
				"How should it feel? (e.g., 'Dark and brooding with moments of hope')", 3,
				func(s *types.Story) *string { return &s.Structure.Tone }),
			textarea("structure.target_audience", "Target Audience",
				"Who is this for? (e.g., 'Young adults who love complex characters')", 3,
				func(s *types.Story) *string { return &s.Structure.TargetAudience }),
			textarea("structure.setting_overview", "Setting Overview",
				"Where and when does your story take place? Paint the broad picture...", 4,
				func(s *types.Story) *string { return &s.Structure.SettingOverview }),
		},
	},
	{
		Id:    "plot",
		Title: "Plot Development",
		Fields: []form.Field[types.Story]{
			textarea("plot.premise", "Premise",
				"What's the basic setup of your story? The 'what if' scenario...", 4,
				func(s *types.Story) *string { return &s.Plot.Premise }),
			textarea("plot.inciting_incident", "Inciting Incident",
				"What event kicks off the main story? What disrupts normal life?", 3,
				func(s *types.Story) *string { return &s.Plot.IncitingIncident }),
			textarea("plot.plot_points", "Key Plot Points",
				"Major beats, turning points, revelations... Outline the story's spine...", 5,
				func(s *types.Story) *string { return &s.Plot.PlotPoints }),
			textarea("plot.climax", "Climax",
				"The big confrontation, revelation, or moment of truth...", 4,
				func(s *types.Story) *string { return &s.Plot.Climax }),
			textarea("plot.resolution", "Resolution",
				"How does it all end? What's the new normal?", 4,
				func(s *types.Story) *string { return &s.Plot.Resolution }),
		},
	},
	{
		Id:    "details",
		Title: "Additional Details",
		Fields: []form.Field[types.Story]{
			textarea("synopsis", "Synopsis",
				"Write a compelling summary of your story...", 5,
				func(s *types.Story) *string { return &s.Synopsis }),
			textarea("notes", "Notes & Ideas",
				"Any additional thoughts, inspiration, or reminders...", 4,
				func(s *types.Story) *string { return &s.Notes }),
			{
				Name:    "status",
				Label:   "Status",
				Widget:  form.WidgetSelect,
				Options: statusOptions(),
				Default: string(types.StatusPlanning),
				Set: func(s *types.Story, v string) {
					s.Status = types.StoryStatus(v)
				},
			},
		},
	},
}}

const defaultCharacterSection = "basic"

var characterSchema = &form.Schema[types.Character]{Sections: []form.Section[types.Character]{
	{
		Id:    "basic",
		Title: "Basic Info",
		Icon:  "👤",
		Fields: []form.Field[types.Character]{
			required(input("name", "Character Name", "Enter character name",
				func(c *types.Character) *string { return &c.Name })),
			input("age", "Age", "e.g., '25', 'Early thirties', 'Ageless'",
				func(c *types.Character) *string { return &c.Age }),
			textarea("genre", "Genre/Setting", "What genre/world does this character belong to?", 3,
				func(c *types.Character) *string { return &c.Genre }),
			textarea("role_in_story", "Role in Story", "Protagonist, antagonist, mentor, comic relief, etc...", 3,
				func(c *types.Character) *string { return &c.RoleInStory }),
			textarea("physical_description", "Physical Description",
				"Describe their appearance, mannerisms, how they carry themselves...", 4,
				func(c *types.Character) *string { return &c.PhysicalDescription }),
			textarea("personal_symbol_object", "Personal Symbol/Object",
				"A meaningful object, tattoo, piece of jewelry, or symbol that represents them...", 3,
				func(c *types.Character) *string { return &c.PersonalSymbolObject }),
			textarea("relationships", "Key Relationships",
				"Who matters to them? Allies, rivals, lovers, family...", 3,
				func(c *types.Character) *string { return &c.Relationships }),
		},
	},
	{
		Id:    "psychology",
		Title: "Psychology",
		Icon:  "🧠",
		Fields: []form.Field[types.Character]{
			textarea("psychology.core_belief_self", "Core Belief About Self",
				"What do they believe about themselves? (e.g., 'I'm unworthy of love')", 3,
				func(c *types.Character) *string { return &c.Psychology.CoreBeliefSelf }),
			textarea("psychology.core_belief_world", "Core Belief About the World",
				"What do they believe about the world? (e.g., 'People only care about power')", 3,
				func(c *types.Character) *string { return &c.Psychology.CoreBeliefWorld }),
			textarea("psychology.desire_vs_need", "Desire vs Need",
				"What do they think they want vs what they actually need to grow? (e.g., Wants revenge but needs to forgive)", 4,
				func(c *types.Character) *string { return &c.Psychology.DesireVsNeed }),
			textarea("psychology.primary_coping_mechanism", "Primary Coping Mechanism",
				"How do they deal with stress? (Humor, isolation, violence, etc.)", 3,
				func(c *types.Character) *string { return &c.Psychology.PrimaryCopingMechanism }),
			textarea("psychology.emotional_blind_spot", "Emotional Blind Spot",
				"What emotional truth do they consistently miss about themselves?", 3,
				func(c *types.Character) *string { return &c.Psychology.EmotionalBlindSpot }),
			textarea("psychology.trigger_points", "Emotional Triggers",
				"What pushes their buttons? Makes them lose control?", 3,
				func(c *types.Character) *string { return &c.Psychology.TriggerPoints }),
			textarea("psychology.emotional_armor", "Emotional Armor",
				"How do they protect themselves emotionally? (Sarcasm, control, etc.)", 3,
				func(c *types.Character) *string { return &c.Psychology.EmotionalArmor }),
		},
	},
	{
		Id:    "conflicts",
		Title: "Conflicts",
		Icon:  "⚔️",
		Fields: []form.Field[types.Character]{
			textarea("conflicts.internal_conflict", "Internal Conflict",
				"What do they struggle with emotionally or morally?", 4,
				func(c *types.Character) *string { return &c.Conflicts.InternalConflict }),
			textarea("conflicts.external_conflict", "External Conflict",
				"Who or what opposes them physically or socially?", 4,
				func(c *types.Character) *string { return &c.Conflicts.ExternalConflict }),
			textarea("conflicts.moral_dilemma", "Moral Dilemma",
				"What moral choice do they struggle with? (e.g., Kill to save many?)", 4,
				func(c *types.Character) *string { return &c.Conflicts.MoralDilemma }),
			textarea("conflicts.unconscious_fear", "Unconscious Fear",
				"What are they afraid of that they're not even aware of?", 3,
				func(c *types.Character) *string { return &c.Conflicts.UnconsciousFear }),
			textarea("conflicts.biggest_regret", "Biggest Regret",
				"One decision they'd reverse in a heartbeat...", 3,
				func(c *types.Character) *string { return &c.Conflicts.BiggestRegret }),
			textarea("conflicts.source_of_shame", "Source of Shame",
				"Deep, hidden shame that haunts them...", 3,
				func(c *types.Character) *string { return &c.Conflicts.SourceOfShame }),
			textarea("conflicts.self_sabotaging_behavior", "Self-Sabotaging Behavior",
				"How do they get in their own way? Push people away?", 3,
				func(c *types.Character) *string { return &c.Conflicts.SelfSabotagingBehavior }),
		},
	},
	{
		Id:    "background",
		Title: "Background",
		Icon:  "📚",
		Fields: []form.Field[types.Character]{
			textarea("background.defining_childhood_moment", "Defining Childhood Moment",
				"One thing from childhood that shaped who they are today...", 4,
				func(c *types.Character) *string { return &c.Background.DefiningChildhoodMoment }),
			textarea("background.first_major_betrayal", "First Major Betrayal",
				"When did they learn not to trust easily?", 4,
				func(c *types.Character) *string { return &c.Background.FirstMajorBetrayal }),
			textarea("background.past_love_or_loss", "Past Love or Loss",
				"Someone they never got over? A loss that changed them?", 4,
				func(c *types.Character) *string { return &c.Background.PastLoveOrLoss }),
			textarea("background.family_role_dynamic", "Family Role & Dynamics",
				"Golden child? Scapegoat? Forgotten middle? Family dynamics...", 4,
				func(c *types.Character) *string { return &c.Background.FamilyRoleDynamic }),
			textarea("background.education_street_smarts", "Education & Street Smarts",
				"Not just degrees - what 'life lessons' shaped their worldview?", 4,
				func(c *types.Character) *string { return &c.Background.EducationStreetSmarts }),
			textarea("background.criminal_record_secret", "Secrets & Hidden Past",
				"Hidden past, secrets, things they don't want others to know...", 4,
				func(c *types.Character) *string { return &c.Background.CriminalRecordSecret }),
		},
	},
	{
		Id:    "moral",
		Title: "Moral Edges",
		Icon:  "⚖️",
		Fields: []form.Field[types.Character]{
			textarea("moral_edges.line_never_cross", "Line They Would Never Cross",
				"What would they refuse to do, no matter the cost?", 3,
				func(c *types.Character) *string { return &c.MoralEdges.LineNeverCross }),
			textarea("moral_edges.worst_thing_done", "Worst Thing They've Done",
				"The act they would never confess to...", 4,
				func(c *types.Character) *string { return &c.MoralEdges.WorstThingDone }),
			textarea("moral_edges.justification_wrongdoing", "How They Justify Wrongdoing",
				"What story do they tell themselves when they do harm?", 3,
				func(c *types.Character) *string { return &c.MoralEdges.JustificationWrongdoing }),
			textarea("moral_edges.villain_origin", "Villain Origin",
				"What would it take to turn them into the villain?", 3,
				func(c *types.Character) *string { return &c.MoralEdges.VillainOrigin }),
			textarea("moral_edges.self_destruction_path", "Path to Self-Destruction",
				"How could they destroy themselves if everything went wrong?", 3,
				func(c *types.Character) *string { return &c.MoralEdges.SelfDestructionPath }),
		},
	},
	{
		Id:    "social",
		Title: "Social Dynamics",
		Icon:  "👥",
		Fields: []form.Field[types.Character]{
			textarea("social_dynamics.public_vs_private_self", "Public vs Private Self",
				"Who are they in front of others vs when alone?", 4,
				func(c *types.Character) *string { return &c.SocialDynamics.PublicVsPrivateSelf }),
			textarea("social_dynamics.group_role", "Role in a Group",
				"Leader, peacemaker, outsider, instigator...", 3,
				func(c *types.Character) *string { return &c.SocialDynamics.GroupRole }),
			textarea("social_dynamics.love_language_attachment", "Love Language & Attachment",
				"How do they show affection? Anxious, avoidant, secure?", 3,
				func(c *types.Character) *string { return &c.SocialDynamics.LoveLanguageAttachment }),
			textarea("social_dynamics.treatment_of_weak", "Treatment of the Weak",
				"How do they treat people with less power than them?", 3,
				func(c *types.Character) *string { return &c.SocialDynamics.TreatmentOfWeak }),
			textarea("social_dynamics.jealousy_triggers", "Jealousy Triggers",
				"What makes them envious or possessive?", 3,
				func(c *types.Character) *string { return &c.SocialDynamics.JealousyTriggers }),
			input("social_dynamics.loyalty_level", "Loyalty Level",
				"e.g., 'Unshakeable', 'Only to family', 'For sale'",
				func(c *types.Character) *string { return &c.SocialDynamics.LoyaltyLevel }),
		},
	},
	{
		Id:    "quirks",
		Title: "Quirks",
		Icon:  "✨",
		Fields: []form.Field[types.Character]{
			textarea("quirks.weird_habits", "Weird Habits",
				"Odd routines or rituals nobody else understands...", 3,
				func(c *types.Character) *string { return &c.Quirks.WeirdHabits }),
			textarea("quirks.physical_tics", "Physical Tics",
				"Nervous gestures, posture, things their hands do...", 3,
				func(c *types.Character) *string { return &c.Quirks.PhysicalTics }),
			textarea("quirks.obsessions_hobbies", "Obsessions & Hobbies",
				"What could they talk about for hours?", 3,
				func(c *types.Character) *string { return &c.Quirks.ObsessionsHobbies }),
			textarea("quirks.voice_speech_pattern", "Voice & Speech Pattern",
				"Accent, catchphrases, how they sound when angry...", 3,
				func(c *types.Character) *string { return &c.Quirks.VoiceSpeechPattern }),
			textarea("quirks.what_makes_laugh", "What Makes Them Laugh",
				"Their sense of humor, in one or two examples...", 3,
				func(c *types.Character) *string { return &c.Quirks.WhatMakesLaugh }),
			textarea("quirks.what_makes_cry", "What Makes Them Cry",
				"The thing that breaks through their defenses...", 3,
				func(c *types.Character) *string { return &c.Quirks.WhatMakesCry }),
		},
	},
	{
		Id:    "narrative",
		Title: "Narrative",
		Icon:  "📖",
		Fields: []form.Field[types.Character]{
			input("narrative.symbol_color_motif", "Symbol, Color or Motif",
				"e.g., 'Crimson', 'Broken clocks', 'Ravens'",
				func(c *types.Character) *string { return &c.Narrative.SymbolColorMotif }),
			input("narrative.character_arc_word", "Character Arc in One Word",
				"e.g., 'Redemption', 'Corruption', 'Awakening'",
				func(c *types.Character) *string { return &c.Narrative.CharacterArcWord }),
			textarea("narrative.theme_connection", "Connection to Theme",
				"How does this character embody or challenge the story's theme?", 3,
				func(c *types.Character) *string { return &c.Narrative.ThemeConnection }),
			textarea("narrative.peak_collapse_timing", "Peak & Collapse Timing",
				"When are they at their best? When do they fall apart?", 3,
				func(c *types.Character) *string { return &c.Narrative.PeakCollapseTiming }),
			textarea("narrative.ending_feeling", "Ending Feeling",
				"What should readers feel about them by the end?", 3,
				func(c *types.Character) *string { return &c.Narrative.EndingFeeling }),
		},
	},
}}
