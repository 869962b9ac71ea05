// Package feedback renders the password requirements checklist.
//
// Create builds the panel on a dom.Surface next to the password input and
// returns a Panel that Update and Reset drive from password.Result values.
// Panel and Stylesheet are the server-rendered templ equivalents, producing
// the same markup so that either side can take over the element.
//
// Markup:
//
//	<div class="password-feedback" id="{input}-feedback">
//	  <small class="password-instructions">...</small>
//	  <div class="password-rules">
//	    <div class="rule-item passed" data-rule="minLength">
//	      <span class="rule-icon">✓</span><span class="rule-text">...</span>
//	    </div>
//	    ...
//	  </div>
//	</div>
//
// Rows carry no state class while neutral, "passed" or "failed" otherwise.
package feedback
