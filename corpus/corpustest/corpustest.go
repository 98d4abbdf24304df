// Package corpustest provides a small bilingual rulebook for tests.
package corpustest

import "itpf-legal-backend/models"

func article(lang models.Language, number, title, content string) models.LegalEntry {
	return models.LegalEntry{Number: number, Title: title, Content: content, Kind: models.KindArticle, Language: lang}
}

func appendix(lang models.Language, number, title, content string) models.LegalEntry {
	return models.LegalEntry{Number: number, Title: title, Content: content, Kind: models.KindAppendix, Language: lang}
}

// Corpus returns a fresh copy of the fixture rulebook
func Corpus() *models.Corpus {
	ar, en := models.LanguageArabic, models.LanguageEnglish
	return &models.Corpus{
		Arabic: models.LanguageCorpus{
			Articles: []models.LegalEntry{
				article(ar, "100", "الفئات", "تقام المسابقات الفردية والأزواج والفرق والتتابع. الزمن المعياري للفردي 6.4 ثانية وللأزواج والفرق 7 ثواني وللتتابع 10 ثواني."),
				article(ar, "102", "مسؤوليات الجهاز الفني", "يكون الجهاز الفني مسؤولاً عن سلامة المشاركين في الميدان. يجب توفير التأمين الطبي لجميع المتسابقين المشاركين. يجب توفير سيارة إسعاف في حالات الطوارئ أثناء المسابقة."),
				article(ar, "103", "الفائز", "الفائز في المسابقة هو المتسابق الحاصل على أعلى مجموع من النقاط. يتم تحديد الفريق الفائز بمجموع نقاط أعضائه."),
				article(ar, "120", "الاستئناف", "يجب تقديم الاستئناف كتابياً إلى لجنة الاستئناف خلال 30 دقيقة من إعلان النتائج. تتكون لجنة الاستئناف من ثلاثة إلى خمسة أعضاء. يتم البت في الاستئناف خلال ساعة واحدة."),
				article(ar, "132", "كسر أو فقدان المعدات", "إذا انكسر السلاح أو سقط بين خط البداية وخط النهاية يحصل المتسابق على صفر نقاط. باستثناء حالة سقوط السلاح بعد عبور خط النهاية فلا عقوبة."),
				article(ar, "140", "مواصفات الوتد", "الحد الأدنى لقطر الوتد 2.5 سم. طول الوتد 30 سم. يوضع الوتد على بعد 70 متر من خط البداية."),
				article(ar, "143", "منح النقاط", "يحصل المتسابق على 6 نقاط إذا حمل الوتد مسافة 10 أمتار أو أكثر. يحصل على 4 نقاط إذا حمل الوتد أقل من 10 أمتار. يحصل على 2 نقطة إذا أصاب الوتد دون حمله."),
				article(ar, "144", "التوقيت", "يجب أن يقطع المتسابق المسافة خلال الزمن المحدد. يتم خصم نصف نقطة ½ عن كل ثانية أو جزء من الثانية تزيد عن الزمن المحدد."),
			},
			Appendices: []models.LegalEntry{
				appendix(ar, "9", "برنامج مسابقة التقاط الأوتاد", "يتكون البرنامج من 18 جولة على ثلاثة أيام. اليوم الأول الرمح واليوم الثاني السيف واليوم الثالث التتابع."),
				appendix(ar, "10", "برنامج الفرق", "تشارك الفرق في جولات الرمح والسيف."),
			},
		},
		English: models.LanguageCorpus{
			Articles: []models.LegalEntry{
				article(en, "100", "Categories", "Competitions are held for individuals, pairs, teams and relay. The standard time for individual events is 6.4 seconds, for pairs and teams 7 seconds and for relay 10 seconds."),
				article(en, "102", "Responsibilities of the technical officials", "The jury is responsible for the safety of participants. Medical insurance must be provided for all athletes. An ambulance must be present for emergency situations during the competition."),
				article(en, "103", "Winner", "The winner of a competition is the athlete with the highest total of points. The winning team of the event is determined by the total points of its members."),
				article(en, "120", "Appeals", "An appeal must be submitted in writing to the appeal committee within 30 minutes of the announcement of results. The appeal committee consists of three to five members. The committee shall decide within one hour."),
				article(en, "132", "Breaking or loss of equipment", "If the weapon is dropped between the start line and the finish line the athlete receives zero points. Exception: if the weapon is dropped after crossing the finish line there is no penalty."),
				article(en, "140", "Peg specifications", "The minimum diameter of the peg is 2.5 cm. The peg length is 30 cm. The peg is placed (70) meters from the start line."),
				article(en, "143", "Awarding of points", "An athlete is awarded 6 points for carrying the peg 10 meters or more past the peg line. 4 points are awarded for carrying the peg less than 10 meters. 2 points are awarded for striking the peg without carrying it."),
				article(en, "144", "Timekeeping", "The athlete must complete the course within the time limit. A penalty of ½ a point per second or part of a second will be deducted for exceeding the time limit."),
			},
			Appendices: []models.LegalEntry{
				appendix(en, "9", "Tent Pegging Event Program", "The program consists of 18 runs over three days. Day one lance, day two sword, day three relay."),
				appendix(en, "10", "Team Event Program", "Teams compete in lance and sword runs."),
			},
		},
	}
}

// Find returns the fixture entry with the given language, kind and number
func Find(c *models.Corpus, lang models.Language, kind models.EntryKind, number string) models.LegalEntry {
	for _, e := range c.Entries(lang) {
		if e.Kind == kind && e.Number == number {
			return e
		}
	}
	return models.LegalEntry{}
}
