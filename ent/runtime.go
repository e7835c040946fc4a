// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/NoAme666/aiquant/ent/agentprofile"
	"github.com/NoAme666/aiquant/ent/approvalitem"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
	"github.com/NoAme666/aiquant/ent/busmessage"
	"github.com/NoAme666/aiquant/ent/event"
	"github.com/NoAme666/aiquant/ent/feedbackentry"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/intentionrecord"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
	"github.com/NoAme666/aiquant/ent/researchcycle"
	"github.com/NoAme666/aiquant/ent/riskrule"
	"github.com/NoAme666/aiquant/ent/schema"
	"github.com/NoAme666/aiquant/ent/toolcall"
	"github.com/NoAme666/aiquant/ent/toolrequest"
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentprofileFields := schema.AgentProfile{}.Fields()
	_ = agentprofileFields
	// agentprofileDescIsLead is the schema descriptor for is_lead field.
	agentprofileDescIsLead := agentprofileFields[6].Descriptor()
	// agentprofile.DefaultIsLead holds the default value on creation for the is_lead field.
	agentprofile.DefaultIsLead = agentprofileDescIsLead.Default.(bool)
	// agentprofileDescCreatedAt is the schema descriptor for created_at field.
	agentprofileDescCreatedAt := agentprofileFields[9].Descriptor()
	// agentprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentprofile.DefaultCreatedAt = agentprofileDescCreatedAt.Default.(func() time.Time)
	approvalitemFields := schema.ApprovalItem{}.Fields()
	_ = approvalitemFields
	// approvalitemDescCreatedAt is the schema descriptor for created_at field.
	approvalitemDescCreatedAt := approvalitemFields[10].Descriptor()
	// approvalitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalitem.DefaultCreatedAt = approvalitemDescCreatedAt.Default.(func() time.Time)
	budgetaccountFields := schema.BudgetAccount{}.Fields()
	_ = budgetaccountFields
	// budgetaccountDescPointsSpent is the schema descriptor for points_spent field.
	budgetaccountDescPointsSpent := budgetaccountFields[4].Descriptor()
	// budgetaccount.DefaultPointsSpent holds the default value on creation for the points_spent field.
	budgetaccount.DefaultPointsSpent = budgetaccountDescPointsSpent.Default.(int)
	// budgetaccountDescUpdatedAt is the schema descriptor for updated_at field.
	budgetaccountDescUpdatedAt := budgetaccountFields[5].Descriptor()
	// budgetaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetaccount.DefaultUpdatedAt = budgetaccountDescUpdatedAt.Default.(func() time.Time)
	// budgetaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetaccount.UpdateDefaultUpdatedAt = budgetaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	busmessageFields := schema.BusMessage{}.Fields()
	_ = busmessageFields
	// busmessageDescPriority is the schema descriptor for priority field.
	busmessageDescPriority := busmessageFields[9].Descriptor()
	// busmessage.DefaultPriority holds the default value on creation for the priority field.
	busmessage.DefaultPriority = busmessageDescPriority.Default.(int)
	// busmessageDescCreatedAt is the schema descriptor for created_at field.
	busmessageDescCreatedAt := busmessageFields[10].Descriptor()
	// busmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	busmessage.DefaultCreatedAt = busmessageDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	feedbackentryFields := schema.FeedbackEntry{}.Fields()
	_ = feedbackentryFields
	// feedbackentryDescCreatedAt is the schema descriptor for created_at field.
	feedbackentryDescCreatedAt := feedbackentryFields[4].Descriptor()
	// feedbackentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackentry.DefaultCreatedAt = feedbackentryDescCreatedAt.Default.(func() time.Time)
	governancedecisionFields := schema.GovernanceDecision{}.Fields()
	_ = governancedecisionFields
	// governancedecisionDescDecidedAt is the schema descriptor for decided_at field.
	governancedecisionDescDecidedAt := governancedecisionFields[5].Descriptor()
	// governancedecision.DefaultDecidedAt holds the default value on creation for the decided_at field.
	governancedecision.DefaultDecidedAt = governancedecisionDescDecidedAt.Default.(func() time.Time)
	intentionrecordFields := schema.IntentionRecord{}.Fields()
	_ = intentionrecordFields
	// intentionrecordDescPriority is the schema descriptor for priority field.
	intentionrecordDescPriority := intentionrecordFields[3].Descriptor()
	// intentionrecord.DefaultPriority holds the default value on creation for the priority field.
	intentionrecord.DefaultPriority = intentionrecordDescPriority.Default.(int)
	// intentionrecordDescCreatedAt is the schema descriptor for created_at field.
	intentionrecordDescCreatedAt := intentionrecordFields[10].Descriptor()
	// intentionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	intentionrecord.DefaultCreatedAt = intentionrecordDescCreatedAt.Default.(func() time.Time)
	memoryapprovalFields := schema.MemoryApproval{}.Fields()
	_ = memoryapprovalFields
	// memoryapprovalDescCreatedAt is the schema descriptor for created_at field.
	memoryapprovalDescCreatedAt := memoryapprovalFields[5].Descriptor()
	// memoryapproval.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryapproval.DefaultCreatedAt = memoryapprovalDescCreatedAt.Default.(func() time.Time)
	memoryrecordFields := schema.MemoryRecord{}.Fields()
	_ = memoryrecordFields
	// memoryrecordDescContent is the schema descriptor for content field.
	memoryrecordDescContent := memoryrecordFields[3].Descriptor()
	// memoryrecord.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	memoryrecord.ContentValidator = memoryrecordDescContent.Validators[0].(func(string) error)
	// memoryrecordDescNeededApprovals is the schema descriptor for needed_approvals field.
	memoryrecordDescNeededApprovals := memoryrecordFields[12].Descriptor()
	// memoryrecord.DefaultNeededApprovals holds the default value on creation for the needed_approvals field.
	memoryrecord.DefaultNeededApprovals = memoryrecordDescNeededApprovals.Default.(int)
	// memoryrecordDescCreatedAt is the schema descriptor for created_at field.
	memoryrecordDescCreatedAt := memoryrecordFields[14].Descriptor()
	// memoryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryrecord.DefaultCreatedAt = memoryrecordDescCreatedAt.Default.(func() time.Time)
	researchcycleFields := schema.ResearchCycle{}.Fields()
	_ = researchcycleFields
	// researchcycleDescRejections is the schema descriptor for rejections field.
	researchcycleDescRejections := researchcycleFields[4].Descriptor()
	// researchcycle.DefaultRejections holds the default value on creation for the rejections field.
	researchcycle.DefaultRejections = researchcycleDescRejections.Default.(int)
	// researchcycleDescCreatedAt is the schema descriptor for created_at field.
	researchcycleDescCreatedAt := researchcycleFields[6].Descriptor()
	// researchcycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchcycle.DefaultCreatedAt = researchcycleDescCreatedAt.Default.(func() time.Time)
	// researchcycleDescUpdatedAt is the schema descriptor for updated_at field.
	researchcycleDescUpdatedAt := researchcycleFields[7].Descriptor()
	// researchcycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	researchcycle.DefaultUpdatedAt = researchcycleDescUpdatedAt.Default.(func() time.Time)
	// researchcycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	researchcycle.UpdateDefaultUpdatedAt = researchcycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	riskruleFields := schema.RiskRule{}.Fields()
	_ = riskruleFields
	// riskruleDescCreatedAt is the schema descriptor for created_at field.
	riskruleDescCreatedAt := riskruleFields[12].Descriptor()
	// riskrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	riskrule.DefaultCreatedAt = riskruleDescCreatedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescEstimatedCost is the schema descriptor for estimated_cost field.
	toolcallDescEstimatedCost := toolcallFields[4].Descriptor()
	// toolcall.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	toolcall.DefaultEstimatedCost = toolcallDescEstimatedCost.Default.(int)
	// toolcallDescActualCost is the schema descriptor for actual_cost field.
	toolcallDescActualCost := toolcallFields[5].Descriptor()
	// toolcall.DefaultActualCost holds the default value on creation for the actual_cost field.
	toolcall.DefaultActualCost = toolcallDescActualCost.Default.(int)
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[12].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
	toolrequestFields := schema.ToolRequest{}.Fields()
	_ = toolrequestFields
	// toolrequestDescRequestCount is the schema descriptor for request_count field.
	toolrequestDescRequestCount := toolrequestFields[4].Descriptor()
	// toolrequest.DefaultRequestCount holds the default value on creation for the request_count field.
	toolrequest.DefaultRequestCount = toolrequestDescRequestCount.Default.(int)
	// toolrequestDescDeployed is the schema descriptor for deployed field.
	toolrequestDescDeployed := toolrequestFields[7].Descriptor()
	// toolrequest.DefaultDeployed holds the default value on creation for the deployed field.
	toolrequest.DefaultDeployed = toolrequestDescDeployed.Default.(bool)
	// toolrequestDescCreatedAt is the schema descriptor for created_at field.
	toolrequestDescCreatedAt := toolrequestFields[8].Descriptor()
	// toolrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolrequest.DefaultCreatedAt = toolrequestDescCreatedAt.Default.(func() time.Time)
	// toolrequestDescUpdatedAt is the schema descriptor for updated_at field.
	toolrequestDescUpdatedAt := toolrequestFields[9].Descriptor()
	// toolrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	toolrequest.DefaultUpdatedAt = toolrequestDescUpdatedAt.Default.(func() time.Time)
	// toolrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	toolrequest.UpdateDefaultUpdatedAt = toolrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicrecordFields := schema.TopicRecord{}.Fields()
	_ = topicrecordFields
	// topicrecordDescPriority is the schema descriptor for priority field.
	topicrecordDescPriority := topicrecordFields[4].Descriptor()
	// topicrecord.DefaultPriority holds the default value on creation for the priority field.
	topicrecord.DefaultPriority = topicrecordDescPriority.Default.(int)
	// topicrecordDescRequiredSeconds is the schema descriptor for required_seconds field.
	topicrecordDescRequiredSeconds := topicrecordFields[8].Descriptor()
	// topicrecord.DefaultRequiredSeconds holds the default value on creation for the required_seconds field.
	topicrecord.DefaultRequiredSeconds = topicrecordDescRequiredSeconds.Default.(int)
	// topicrecordDescCreatedAt is the schema descriptor for created_at field.
	topicrecordDescCreatedAt := topicrecordFields[14].Descriptor()
	// topicrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicrecord.DefaultCreatedAt = topicrecordDescCreatedAt.Default.(func() time.Time)
}
