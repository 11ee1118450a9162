package types

type CharacterPsychology struct {
	CoreBeliefSelf         string `json:"core_belief_self"`
	CoreBeliefWorld        string `json:"core_belief_world"`
	DesireVsNeed           string `json:"desire_vs_need"`
	PrimaryCopingMechanism string `json:"primary_coping_mechanism"`
	EmotionalBlindSpot     string `json:"emotional_blind_spot"`
	TriggerPoints          string `json:"trigger_points"`
	EmotionalArmor         string `json:"emotional_armor"`
}

type CharacterConflicts struct {
	InternalConflict       string `json:"internal_conflict"`
	ExternalConflict       string `json:"external_conflict"`
	MoralDilemma           string `json:"moral_dilemma"`
	UnconsciousFear        string `json:"unconscious_fear"`
	BiggestRegret          string `json:"biggest_regret"`
	SourceOfShame          string `json:"source_of_shame"`
	SelfSabotagingBehavior string `json:"self_sabotaging_behavior"`
}

type CharacterBackground struct {
	DefiningChildhoodMoment string `json:"defining_childhood_moment"`
	FirstMajorBetrayal      string `json:"first_major_betrayal"`
	PastLoveOrLoss          string `json:"past_love_or_loss"`
	FamilyRoleDynamic       string `json:"family_role_dynamic"`
	EducationStreetSmarts   string `json:"education_street_smarts"`
	CriminalRecordSecret    string `json:"criminal_record_secret"`
}

type CharacterMoral struct {
	LineNeverCross          string `json:"line_never_cross"`
	WorstThingDone          string `json:"worst_thing_done"`
	JustificationWrongdoing string `json:"justification_wrongdoing"`
	VillainOrigin           string `json:"villain_origin"`
	SelfDestructionPath     string `json:"self_destruction_path"`
}

type CharacterSocial struct {
	PublicVsPrivateSelf    string `json:"public_vs_private_self"`
	GroupRole              string `json:"group_role"`
	LoveLanguageAttachment string `json:"love_language_attachment"`
	TreatmentOfWeak        string `json:"treatment_of_weak"`
	JealousyTriggers       string `json:"jealousy_triggers"`
	LoyaltyLevel           string `json:"loyalty_level"`
}

type CharacterQuirks struct {
	WeirdHabits        string `json:"weird_habits"`
	PhysicalTics       string `json:"physical_tics"`
	ObsessionsHobbies  string `json:"obsessions_hobbies"`
	VoiceSpeechPattern string `json:"voice_speech_pattern"`
	WhatMakesLaugh     string `json:"what_makes_laugh"`
	WhatMakesCry       string `json:"what_makes_cry"`
}

type CharacterNarrative struct {
	SymbolColorMotif   string `json:"symbol_color_motif"`
	CharacterArcWord   string `json:"character_arc_word"`
	ThemeConnection    string `json:"theme_connection"`
	PeakCollapseTiming string `json:"peak_collapse_timing"`
	EndingFeeling      string `json:"ending_feeling"`
}

type Character struct {
	Id                   string `json:"id,omitempty"`
	Name                 string `json:"name"`
	Age                  string `json:"age"`
	Genre                string `json:"genre"`
	RoleInStory          string `json:"role_in_story"`
	PhysicalDescription  string `json:"physical_description"`
	PersonalSymbolObject string `json:"personal_symbol_object"`

	Psychology     CharacterPsychology `json:"psychology"`
	Conflicts      CharacterConflicts  `json:"conflicts"`
	Background     CharacterBackground `json:"background"`
	MoralEdges     CharacterMoral      `json:"moral_edges"`
	SocialDynamics CharacterSocial     `json:"social_dynamics"`
	Quirks         CharacterQuirks     `json:"quirks"`
	Narrative      CharacterNarrative  `json:"narrative"`

	Relationships string `json:"relationships"`
	StoryId       string `json:"story_id,omitempty"`
}
