package markers

// englishBundle builds the English marker bundle. All entries are
// case-folded; matching happens against lower-cased text and lemmas.
func englishBundle() *Bundle {
	return &Bundle{
		Language:   English,
		CaseFolded: true,

		// Adjectives commonly used in vague spiritual claims
		VagueAdjectives: wordSet(
			// generic
			"ancient", "ascended", "celestial", "cosmic", "divine",
			"eternal", "hidden", "ineffable", "mysterious", "sacred",
			"secret", "sovereign", "transcendent", "veiled", "light",
			// prosperity gospel
			"anointed", "prophetic",
			// new age
			"vibrational", "activated",
			// conspirituality
			"suppressed",
			// fraternal
			"initiatory", "esoteric",
		),

		// Authority-claim phrases that bypass critical thinking
		AuthorityPhrases: []string{
			// generic
			"the ascended masters say",
			"channelled directly from",
			"the galactic federation confirms",
			"it has been revealed that",
			"the akashic records show",
			"ancient prophecy states",
			"the council of light decrees",
			"the galactic federation of light tells",
			"ashtar speaks",
			"saint germain speaks",
			// prosperity gospel
			"god told me to tell you",
			"the lord revealed to me",
			"the holy spirit says",
			"thus saith the lord",
			// new age
			"the angels have spoken",
			// cult
			"the elders have decreed",
			// fraternal
			"the grand master has spoken",
			"the inner circle reveals",
		},

		// Urgency/fear patterns used to manipulate
		UrgencyPatterns: []string{
			// generic
			"you must act now",
			"time is running out",
			"only the chosen will",
			"if you do not awaken",
			"the window is closing",
			"failure to comply",
			// prosperity gospel
			"sow your seed now",
			"this is your moment of breakthrough",
			"god is moving right now",
			// commercial
			"limited spots remaining",
			"enrolment closing soon",
			"this offer expires",
			"last chance to join",
			// conspirituality
			"wake up before it's too late",
		},

		// Fear/doom words (lemma base forms)
		FearWords: wordSet(
			"annihilation", "calamity", "catastrophe", "collapse",
			"damnation", "despair", "destruction", "devastation", "doom",
			"peril", "ruin", "suffer", "torment", "tribulation", "wrath",
			// prosperity gospel / cult
			"curse", "bondage",
			// conspirituality
			"plague",
			// cult
			"exile",
		),

		// Fear/doom phrases (multi-word, matched via substring)
		FearPhrases: []string{
			"old earth",
			// prosperity gospel
			"generational curse",
			"spirit of poverty",
			"left behind",
			"demonic attack",
			"under spiritual attack",
			// cult
			"spiritual death",
			// fraternal
			"expelled from the order",
			"oath-breaker",
		},

		// Euphoria/promise words (lemma base forms)
		EuphoriaWords: wordSet(
			"abundance", "ascension", "awakening", "bliss",
			"enlightenment", "harmony", "liberation", "miracle",
			"nirvana", "paradise", "rapture", "rebirth", "salvation",
			"transcendence", "utopia",
			// prosperity gospel
			"prosperity", "breakthrough", "anointing",
			// new age
			"manifestation",
		),

		// Euphoria/promise phrases (multi-word, matched via substring)
		EuphoriaPhrases: []string{
			"new earth",
			// prosperity gospel
			"financial breakthrough",
			"hundredfold return",
			"name it and claim it",
			"claim your blessing",
			// new age
			"activate your dna",
			"quantum healing",
			"raise your vibration",
		},

		// Unfalsifiable/unverifiable source claims
		UnfalsifiableSourcePhrases: []string{
			// generic
			"ancient wisdom teaches",
			"the quantum field",
			"higher dimensions reveal",
			"the universe tells us",
			"the cosmos has shown",
			"spirit has revealed",
			"the akashic field confirms",
			"light beings communicate",
			"the source energy",
			"the divine matrix",
			"interdimensional beings say",
			"star beings confirm",
			"the great central sun",
			"the crystalline grid",
			"the schumann resonance proves",
			// conspirituality
			"suppressed research shows",
			"what they don't want you to know",
			"forbidden knowledge",
			"the truth they hide",
			"banned information",
			// fraternal
			"the ancient mysteries teach",
			"the secret doctrine reveals",
			"the inner tradition holds",
		},

		// Unnamed/vague authority claims
		UnnamedAuthorityPhrases: []string{
			"scientists say",
			"experts agree",
			"studies show",
			"research proves",
			"it has been scientifically proven",
			"doctors confirm",
			"leading researchers",
			"top scientists",
			"numerous studies",
			"science has shown",
			"data confirms",
			"evidence proves",
			"scholars agree",
			"historians confirm",
			"according to sources",
			"insiders reveal",
			// conspirituality
			"whistleblowers confirm",
			"former insiders say",
			"independent researchers found",
			"alternative doctors say",
			"censored experts",
		},

		// Verifiable citation markers (counter-signal, reduces the
		// attribution score; never reported as evidence)
		VerifiableCitationMarkers: []string{
			"published in",
			"et al.",
			"doi:",
			"https://",
			"journal of",
			"university of",
			"proceedings of",
			"isbn",
			"peer-reviewed",
			"vol.",
		},

		// Tiered commitment markers for foot-in-the-door progression
		EscalationTiers: []EscalationTier{
			{
				Level: 1,
				Phrases: []string{
					"consider", "you might", "explore", "some people find",
					"you could try", "worth exploring", "open your mind to",
					"open your heart", "take a moment to", "reflect on",
					"begin to notice", "you may find", "it can help",
					// commercial
					"attend a free session",
					// fraternal
					"visit the lodge",
				},
			},
			{
				Level: 2,
				Phrases: []string{
					"you should", "you need to", "it is essential",
					"it's important to", "commit to", "dedicate yourself",
					"make the investment", "enrol now", "sign up today",
					"join the programme", "take the next step", "go deeper",
					"you are ready for",
					// prosperity gospel
					"sow a seed of faith",
					// commercial
					"upgrade to the next level",
					// fraternal
					"take the first degree",
				},
			},
			{
				Level: 3,
				Phrases: []string{
					"you must", "you have no choice", "abandon your old life",
					"cut ties with", "leave behind those who", "only through us",
					"there is no other way", "your old self must die",
					"total surrender", "complete devotion",
					"sever all attachments", "give everything",
					"sell your possessions", "those who refuse will",
					"full commitment required", "cut negative cords",
					"cut all negative cords", "cut the negative cords",
					// prosperity gospel
					"give your life savings",
					// fraternal
					"swear the blood oath",
				},
			},
		},

		ContradictionPairs: []ContradictionPair{
			{
				Label: "empowerment vs. dependency",
				PoleA: []string{"you have the power", "power is within", "inner power", "you are the creator"},
				PoleB: []string{"you need this", "you must follow", "without guidance", "only through me"},
			},
			{
				Label: "universality vs. exclusivity",
				PoleA: []string{"all paths", "many paths", "every path", "truth is everywhere"},
				PoleB: []string{"the only way", "the only path", "the one true", "no other way"},
			},
			{
				Label: "non-judgement vs. blame",
				PoleA: []string{"no judgement", "without judgement", "free of judgement", "do not judge"},
				PoleB: []string{"low vibration", "attract suffering", "karmic debt", "you chose this suffering"},
			},
			{
				Label: "ego dissolution vs. inflation",
				PoleA: []string{"let go of ego", "release the ego", "ego is illusion", "dissolve the ego"},
				PoleB: []string{"you are chosen", "you are special", "the select few", "your soul is advanced"},
			},
			{
				Label: "autonomy vs. doubt suppression",
				PoleA: []string{"trust your intuition", "trust yourself", "inner knowing", "your own truth"},
				PoleB: []string{"doubt is fear", "doubt is resistance", "ego is resisting", "your mind deceives"},
			},
			{
				Label: "unconditional vs. transactional",
				PoleA: []string{"unconditional love", "love without condition", "love is free", "love has no price"},
				PoleB: []string{"if you leave", "lose your progress", "fall behind", "miss this opportunity"},
			},
			// prosperity gospel
			{
				Label: "poverty virtue vs. prosperity promise",
				PoleA: []string{"blessed are the poor", "money is the root of evil", "poverty is a virtue"},
				PoleB: []string{"god wants you wealthy", "claim your abundance", "prosperity is your birthright"},
			},
			// cult
			{
				Label: "community love vs. shunning",
				PoleA: []string{"we are family", "we love you unconditionally", "this is a loving community"},
				PoleB: []string{"shunned from the community", "no longer welcome", "you will be expelled"},
			},
			// fraternal
			{
				Label: "openness vs. sworn secrecy",
				PoleA: []string{"all seekers are welcome", "open to all who seek", "we turn no one away"},
				PoleB: []string{"sworn to secrecy", "bound by oath", "sealed by blood oath", "never reveal the mysteries"},
			},
		},
	}
}
