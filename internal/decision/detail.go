package decision

import (
	"fmt"
	"strings"
)

// StepDetail is the long-form copy shown in the step detail overlay.
type StepDetail struct {
	Intro        string
	WhyItMatters []string
	HowToDo      []string
	QuickActions []string
}

var stepDetails = map[StepID]StepDetail{
	StepBudget: {
		Intro: "Know where every dollar goes before you spend it.",
		WhyItMatters: []string{
			"You can't manage what you don't measure. A budget gives you complete visibility into your financial life.",
			"Most people underestimate spending by 20-30%. A budget reveals the truth.",
			"It's not about restriction. It's about intentional choices and guilt-free spending.",
		},
		HowToDo: []string{
			"Download a budgeting app (Mint, YNAB, EveryDollar) or use a simple spreadsheet.",
			"List all income sources and their amounts.",
			"Track every expense for 30 days, every coffee and snack included.",
			"Categorize spending into needs, wants, and savings.",
			"Review weekly and adjust as needed.",
		},
	},
	StepEmergencyFund: {
		Intro: "Protect yourself from life's unexpected expenses.",
		WhyItMatters: []string{
			"Emergencies are the #1 reason people go into high-interest debt.",
			"Even $500 saved can keep a car repair or medical bill from becoming credit card debt.",
			"An emergency fund lowers stress and keeps long-term goals intact.",
		},
		HowToDo: []string{
			"Open a separate high-yield savings account and nickname it \"Emergency Fund.\"",
			"Automate a weekly transfer. Even $25 adds up to $1,300 a year.",
			"Start with a $500–$1,000 target, then build toward one month of essentials.",
			"Celebrate milestones to reinforce the habit.",
			"Move on once the fund reaches the starter goal.",
		},
	},
	StepEmployerMatch: {
		Intro: "Capture every dollar your employer is willing to match.",
		WhyItMatters: []string{
			"Employer match dollars are a guaranteed return on your contributions.",
			"Skipping the match is the same as turning down part of your paycheck.",
			"Those extra dollars compound for decades toward retirement.",
		},
		HowToDo: []string{
			"Check your benefits portal or HR handbook for the exact match formula.",
			"Increase your contribution to the percentage that earns the full match.",
			"Choose a diversified target-date or index fund if you're unsure where to invest.",
			"Verify the match amount on your statement each pay cycle.",
			"Revisit annually or when you receive raises.",
		},
	},
	StepHighAPRDebt: {
		Intro: "Stop high-interest balances from draining your future.",
		WhyItMatters: []string{
			"A $5,000 balance at 20% APR costs about $1,000 per year in interest alone.",
			"Every dollar going to interest can't be saved or invested.",
			"High-interest debt creates stress and slows every other goal.",
		},
		HowToDo: []string{
			"List every debt: balance, APR, and minimum payment.",
			"Pay minimums everywhere, then send extra to the highest APR (avalanche method).",
			"Call lenders to request hardship programs or lower rates.",
			"Consider a 0% balance-transfer card if you can pay it down within the intro window.",
			"Pause new discretionary spending until high-APR balances are cleared.",
		},
	},
	StepIRA: {
		Intro: "Add tax-advantaged growth outside your workplace plan.",
		WhyItMatters: []string{
			"Roth IRA growth can be withdrawn tax-free in retirement.",
			"You control the provider, the fees, and the investments.",
			"Diversifying beyond your 401(k) gives you more withdrawal flexibility later.",
		},
		HowToDo: []string{
			"Choose a low-cost provider (Vanguard, Fidelity, or Schwab).",
			"Decide between Roth (pay tax now) or Traditional (defer tax) based on income and tax bracket.",
			"Set up automatic monthly transfers that hit the annual limit ($7,000 in 2025).",
			"Invest in broad-market index or target-date funds to stay diversified.",
			"Review contributions every tax year to stay within limits.",
		},
	},
	StepIncreaseWorkplaceRetirement: {
		Intro: "Let compounding work harder inside your workplace plan.",
		WhyItMatters: []string{
			"Pre-tax contributions lower taxable income today.",
			"Even small percentage increases translate into large balances over decades.",
			"Staying on track now prevents a shortfall later in life.",
		},
		HowToDo: []string{
			"Log into your plan and increase your contribution by 1–2%.",
			"Aim for 15–20% of gross income across all retirement accounts.",
			"Stick with diversified, low-cost funds or a target-date fund.",
			"Automate future bump-ups to coincide with annual raises.",
			"Schedule an annual review to rebalance and stay aligned with goals.",
		},
	},
	StepHSA: {
		Intro: "Use the triple tax advantage to cover healthcare costs.",
		WhyItMatters: []string{
			"HSAs are the only account with a triple tax benefit (pre-tax in, tax-free growth, tax-free withdrawals).",
			"Healthcare can be a six-figure retirement expense. HSAs keep those dollars sheltered.",
			"You can reimburse yourself years later if you save receipts.",
		},
		HowToDo: []string{
			"Confirm you're enrolled in an HSA-eligible high-deductible health plan.",
			"Set payroll contributions that hit the annual limit (individual or family).",
			"Invest HSA funds in low-cost index options once the cash buffer is met.",
			"Pay current medical costs out of pocket when possible to let the HSA grow.",
			"Store receipts digitally so you can reimburse yourself in the future.",
		},
	},
	Step529: {
		Intro: "Keep education savings growing tax-free.",
		WhyItMatters: []string{
			"529 contributions grow tax-deferred and withdrawals for qualified education are tax-free.",
			"Many states offer income tax deductions or credits for contributions.",
			"Funds can be reassigned to another beneficiary when plans change.",
		},
		HowToDo: []string{
			"Compare your state's 529 plan against low-fee national options.",
			"Open the account with you as owner and your student as beneficiary.",
			"Automate monthly transfers aligned with your timeline.",
			"Choose an age-based portfolio that lowers risk as college approaches.",
			"Track state-specific benefits to maximize deductions or credits.",
		},
	},
	StepDownPayment: {
		Intro: "Build a dedicated fund for your future home.",
		WhyItMatters: []string{
			"A 20% down payment can eliminate PMI and reduce monthly mortgage costs.",
			"Separating this goal keeps emergency or retirement funds untouched.",
			"Cash ready before shopping gives you negotiating power.",
		},
		HowToDo: []string{
			"Estimate your target home price and calculate a 20% down payment.",
			"Pick the right vehicle: high-yield savings for <5 years, conservative investments for longer timelines.",
			"Automate transfers aligned with your purchase timeline.",
			"Keep this fund separate from your everyday savings.",
			"Review progress quarterly and adjust contributions as income changes.",
		},
	},
	StepTaxable: {
		Intro: "Invest beyond tax-advantaged accounts for future flexibility.",
		WhyItMatters: []string{
			"Taxable brokerage accounts unlock more growth once sheltered buckets are full.",
			"Money stays liquid with no early withdrawal penalties.",
			"Tax-efficient investing minimizes the drag from capital gains.",
		},
		HowToDo: []string{
			"Open a low-cost brokerage account (Vanguard, Fidelity, Schwab).",
			"Fund it automatically after maxing tax-advantaged accounts.",
			"Stick to broad, tax-efficient index funds and ETFs.",
			"Harvest tax losses in down years to offset gains elsewhere.",
			"Hold positions at least one year to qualify for lower long-term capital gains rates.",
		},
	},
}

var stepIcons = map[StepID]string{
	StepBudget:                      "$",
	StepEmergencyFund:               "🐖",
	StepEmployerMatch:               "↗",
	StepHighAPRDebt:                 "▭",
	StepIRA:                         "✦",
	StepIncreaseWorkplaceRetirement: "⇄",
	StepHSA:                         "♥",
	Step529:                         "🎓",
	StepDownPayment:                 "⌂",
	StepTaxable:                     "↘",
}

// Detail returns the long-form copy for a step.
func Detail(id StepID) (StepDetail, bool) {
	detail, ok := stepDetails[id]
	return detail, ok
}

// Icon returns the glyph shown beside a step. Unknown ids fall back to a
// sparkle, matching the active card's fallback.
func Icon(id StepID) string {
	if icon, ok := stepIcons[id]; ok {
		return icon
	}
	return "✦"
}

// DetailMarkdown renders a step and its long-form copy as Markdown for the
// detail overlay.
func DetailMarkdown(def StepDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", Icon(def.ID), def.Title)
	detail, ok := Detail(def.ID)
	if ok && detail.Intro != "" {
		fmt.Fprintf(&b, "_%s_\n\n", detail.Intro)
	}
	if def.Why != "" {
		fmt.Fprintf(&b, "%s\n\n", def.Why)
	}
	if ok {
		writeSection(&b, "Why it matters", detail.WhyItMatters, false)
		writeSection(&b, "How to do it", detail.HowToDo, true)
		writeSection(&b, "Quick actions", detail.QuickActions, false)
	} else {
		writeSection(&b, "How to do it", def.HowBullets, true)
	}
	if len(def.Links) > 0 {
		b.WriteString("## Resources\n\n")
		for _, link := range def.Links {
			fmt.Fprintf(&b, "- [%s](%s)\n", link.Label, link.Href)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
			continue
		}
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
