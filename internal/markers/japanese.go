package markers

// japaneseBundle builds the Japanese marker bundle.
//
// Japanese has no case distinction, so entries are stored in exact script
// form (standard full-width, not half-width katakana) and matched verbatim.
// Word categories are matched against lemmas (dictionary base forms) from
// the morphological analyzer; phrase categories via substring.
func japaneseBundle() *Bundle {
	return &Bundle{
		Language:   Japanese,
		CaseFolded: false,

		VagueAdjectives: wordSet(
			// generic
			"神聖",     // sacred
			"宇宙の",    // cosmic
			"永遠",     // eternal
			"崇高な",    // sublime/transcendent
			"神秘の",    // mysterious
			"超越した",   // transcendent
			"秘められた",  // hidden/veiled
			"古代の",    // ancient
			"聖なる",    // sacred/holy
			"目に見えない", // invisible/unseen
			// prosperity gospel
			"祝福された", // blessed/anointed
			"預言的",   // prophetic
			// new age
			"波動の",    // vibrational
			"活性化された", // activated
			// conspirituality
			"隠蔽された", // suppressed
			// fraternal
			"秘伝の", // initiatory
			"奥義の", // esoteric
		),

		AuthorityPhrases: []string{
			// generic
			"アセンデッドマスターからのメッセージによると", // the ascended masters say
			"公式にチャネリングされた",           // channelled directly from
			"銀河連合の緊急介入",              // the galactic federation confirms
			"暴露された真実は",               // it has been revealed that
			"アカシックレコードからダウンロードした情報によると", // the akashic records show
			"古代の予言によると",     // ancient prophecy states
			"光の評議会が決定した",    // the council of light decrees
			"アシュタールからの伝言は",  // ashtar speaks
			"セント・ジャーメインが言うには", // saint germain speaks
			"高次源の存在からのメッセージ", // message from higher-dimensional entities
			// prosperity gospel
			"神さまからのメッセージです", // god told me to tell you
			"主が私に啓示された",     // the lord revealed to me
			"聖霊が言っている",      // the holy spirit says
			// cult
			"長老たちが決定した", // the elders have decreed
			// fraternal
			"グランドマスターによると", // the grand master has spoken
			"秘密結社が明かす",     // the inner circle reveals
		},

		UrgencyPatterns: []string{
			// generic
			"今すぐ行動しなければ",     // you must act now
			"時間がない",          // time is running out
			"選ばれた者だけが",       // only the chosen will
			"目覚めなければ",        // if you do not awaken
			"ゲートが閉じようとしている",  // the gate is closing
			"ポータルが閉じようとしている", // the portal is closing
			"従わなければ",         // failure to comply
			// prosperity gospel
			"今こそ種を蒔く時",   // sow your seed now
			"ブレイクスルーの瞬間", // moment of breakthrough
			"神々が今動いている",  // gods are moving right now
			// commercial
			"残りわずか",      // limited spots remaining
			"募集締め切り間近",   // enrolment closing soon
			"このオファーは期間限定", // this offer expires
			"最後のチャンス",    // last chance
			// conspirituality
			"手遅れになる前に目覚めよ", // wake up before it's too late
			"変化に備えよ",       // prepare for the change
		},

		FearWords: wordSet(
			"滅亡", "災厄", "大惨事", "崩壊", "天罰", "絶望", "破壊",
			"壊滅", "破滅", "危機", "廃墟", "苦しみ", "苦悶", "試練",
			"怒り", "お試し",
			// prosperity gospel / cult
			"呪い", "束縛",
			// conspirituality
			"疫病",
			// cult
			"追放", "排斥",
		),

		FearPhrases: []string{
			"古い地球",      // old earth
			"3次元の地球",    // 3D earth
			"世代の呪い",     // generational curse
			"貧困の霊",      // spirit of poverty
			"取り残される",    // left behind
			"悪魔の攻撃",     // demonic attack
			"霊的攻撃を受けている", // under spiritual attack
			"霊的な死",      // spiritual death
			"結社から追放",    // expelled from the order
			"誓約違反者",     // oath-breaker
		},

		EuphoriaWords: wordSet(
			"豊かさ", "アセンション", "次元上昇", "覚醒", "目覚め", "活性化",
			"至福", "悟り", "解脱", "調和", "解放", "奇跡", "涅槃",
			"楽園", "歓喜", "再生", "救済", "超越", "理想郷",
			// prosperity gospel
			"繁栄", "ブレイクスルー", "聖油注ぎ",
			// new age
			"引き寄せ", "高波動", "高次元",
		),

		EuphoriaPhrases: []string{
			"新しい地球",     // new earth
			"5次元の地球",    // 5D earth
			"経済的ブレイクスルー", // financial breakthrough
			"百倍の返り",     // hundredfold return
			"宣言して受け取る",   // name it and claim it
			"祝福を受け取りなさい", // claim your blessing
			"DNAを活性化",   // activate your DNA
			"量子ヒーリング",    // quantum healing
			"波動を上げる",     // raise your vibration
		},

		UnfalsifiableSourcePhrases: []string{
			// generic
			"古代の叡智が教える",     // ancient wisdom teaches
			"量子場",           // the quantum field
			"高次元が明かす",       // higher dimensions reveal
			"宇宙が私たちに告げる",    // the universe tells us
			"宇宙が示した",        // the cosmos has shown
			"スピリットが啓示した",    // spirit has revealed
			"アカシックフィールドが確認", // the akashic field confirms
			"光の存在が伝える",      // light beings communicate
			"ソースエネルギー",      // the source energy
			"ディバインマトリックス",   // the divine matrix
			"異次元の存在が言う",     // interdimensional beings say
			"スターシードが確認",     // star beings confirm
			"グレートセントラルサン",   // the great central sun
			"クリスタルグリッド",     // the crystalline grid
			"シューマン共鳴が証明する",  // the schumann resonance proves
			// conspirituality
			"隠蔽された研究が示す", // suppressed research shows
			"彼らが隠していること", // what they don't want you to know
			"禁じられた知識",    // forbidden knowledge
			"彼らが隠す真実",    // the truth they hide
			"禁止された情報",    // banned information
			// fraternal
			"古代の秘儀が教える", // the ancient mysteries teach
			"秘密の教義が明かす", // the secret doctrine reveals
			"内なる伝統が伝える", // the inner tradition holds
		},

		UnnamedAuthorityPhrases: []string{
			"科学者が言う",      // scientists say
			"専門家が認める",     // experts agree
			"研究が示す",       // studies show
			"研究が証明する",     // research proves
			"科学的に証明されている", // scientifically proven
			"医師が確認",       // doctors confirm
			"第一線の研究者",     // leading researchers
			"トップ科学者",      // top scientists
			"多数の研究",       // numerous studies
			"科学が示した",      // science has shown
			"データが確認する",    // data confirms
			"証拠が証明する",     // evidence proves
			"学者が認める",      // scholars agree
			"歴史家が確認する",    // historians confirm
			"情報筋によると",     // according to sources
			"内部関係者が明かす",   // insiders reveal
			// conspirituality
			"内部告発者が確認",  // whistleblowers confirm
			"元関係者が語る",   // former insiders say
			"独立系研究者が発見", // independent researchers found
			"代替医療の医師が語る", // alternative doctors say
			"検閲された専門家",  // censored experts
		},

		VerifiableCitationMarkers: []string{
			"に掲載", // published in
			"et al.",
			"doi:",
			"https://",
			"ジャーナル", // journal
			"大学の",   // university of
			"学会",    // academic society / proceedings
			"isbn",
			"査読済み", // peer-reviewed
			"vol.",
		},

		EscalationTiers: []EscalationTier{
			{
				Level: 1,
				Phrases: []string{
					"考えてみて",        // consider
					"かもしれません",      // you might
					"探求して",         // explore
					"役立つと感じる人もいます", // some people find
					"試してみては",       // you could try
					"探求する価値がある",    // worth exploring
					"心を開いて",        // open your mind/heart
					"少し時間を取って",     // take a moment to
					"振り返ってみて",      // reflect on
					"気づき始めて",       // begin to notice
					"発見するかもしれません",  // you may find
					"助けになる",        // it can help
					"無料セッションに参加",   // attend a free session
					"ロッジを訪ねて",      // visit the lodge
				},
			},
			{
				Level: 2,
				Phrases: []string{
					"すべきです",         // you should
					"する必要がある",       // you need to
					"不可欠です",         // it is essential
					"重要です",          // it's important to
					"コミットして",        // commit to
					"専念して",          // dedicate yourself
					"投資をして",         // make the investment
					"今すぐ登録",         // enrol now
					"今日申し込む",        // sign up today
					"プログラムに参加",      // join the programme
					"次のステップへ",       // take the next step
					"もっと深く",         // go deeper
					"あなたは準備ができている",  // you are ready for
					"信仰の種を蒔く",       // sow a seed of faith
					"次のレベルへアップグレード", // upgrade to the next level
					"第一の位階を受けよ",     // take the first degree
				},
			},
			{
				Level: 3,
				Phrases: []string{
					"しなければならない",    // you must
					"選択肢はない",       // you have no choice
					"古い生活を捨てよ",     // abandon your old life
					"縁を切れ",         // cut ties with
					"ついてこない者を置いていけ", // leave behind those who
					"私たちを通じてのみ",    // only through us
					"他に道はない",       // there is no other way
					"古い自分は死ななければ",  // your old self must die
					"完全な降伏",        // total surrender
					"完全な献身",        // complete devotion
					"すべての執着を断て",    // sever all attachments
					"すべてを捧げよ",      // give everything
					"財産を売り払え",      // sell your possessions
					"拒む者は",         // those who refuse will
					"完全なコミットメントが必要", // full commitment required
					"ネガティブなコードを切れ",  // cut negative cords
					"全財産を捧げよ",      // give your life savings
					"血の誓約を立てよ",     // swear the blood oath
				},
			},
		},

		ContradictionPairs: []ContradictionPair{
			{
				Label: "エンパワーメント vs. 依存", // empowerment vs. dependency
				PoleA: []string{"あなたには力がある", "力はあなたの中に", "内なる力", "あなたが創造者"},
				PoleB: []string{"これが必要", "従わなければならない", "導きがなければ", "私を通じてのみ"},
			},
			{
				Label: "普遍性 vs. 排他性", // universality vs. exclusivity
				PoleA: []string{"すべての道", "多くの道", "あらゆる道", "真実はどこにでも"},
				PoleB: []string{"唯一の道", "唯一の方法", "唯一の真実", "他に道はない"},
			},
			{
				Label: "無裁き vs. 非難", // non-judgement vs. blame
				PoleA: []string{"裁かない", "裁きなく", "裁きから自由", "批判してはならない"},
				PoleB: []string{"低い波動", "苦しみを引き寄せた", "カルマの負債", "この苦しみを選んだ"},
			},
			{
				Label: "エゴの解体 vs. エゴの肥大", // ego dissolution vs. inflation
				PoleA: []string{"エゴを手放す", "エゴを解放", "エゴは幻想", "エゴを溶かす", "エゴの死"},
				PoleB: []string{"あなたは選ばれた", "あなたは特別", "選ばれし少数", "あなたの魂は進化している"},
			},
			{
				Label: "自律 vs. 疑念の抑圧", // autonomy vs. doubt suppression
				PoleA: []string{"直感を信じて", "自分を信じて", "内なる知恵", "あなた自身の真実"},
				PoleB: []string{"疑いは恐れ", "疑いは抵抗", "エゴが抵抗している", "あなたの心は騙す"},
			},
			{
				Label: "無条件 vs. 取引的", // unconditional vs. transactional
				PoleA: []string{"無条件の愛", "条件のない愛", "愛は無償", "愛に値段はない"},
				PoleB: []string{"離れたら", "進歩を失う", "遅れをとる", "この機会を逃す"},
			},
			{
				Label: "清貧の美徳 vs. 繁栄の約束", // poverty virtue vs. prosperity promise
				PoleA: []string{"貧しい者は幸い", "金は諸悪の根源", "清貧は美徳"},
				PoleB: []string{"神はあなたに富を望む", "豊かさを宣言せよ", "繁栄はあなたの権利"},
			},
			{
				Label: "共同体の愛 vs. 追放", // community love vs. shunning
				PoleA: []string{"私たちは家族", "無条件に愛している", "愛に満ちたコミュニティ"},
				PoleB: []string{"コミュニティから追放", "もう歓迎されない", "除名される"},
			},
			{
				Label: "開放性 vs. 誓約の秘密", // openness vs. sworn secrecy
				PoleA: []string{"すべての求道者を歓迎", "求める者すべてに開かれた", "誰も拒まない"},
				PoleB: []string{"秘密を誓う", "誓約に縛られた", "血の誓約で封印", "秘儀を決して明かすな"},
			},
		},
	}
}
