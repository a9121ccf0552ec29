package ui

// datastarSrc is the client runtime behind the install tabs. Pinned so the
// content-security policy and the page agree on what loads.
const datastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// copyScript wires every [data-copy-text] control to a best-effort clipboard
// write. The write is fire-and-forget: a missing or denied clipboard API is
// logged to the console and otherwise dropped, since the command text stays
// on screen as the manual fallback.
const copyScript = `(function(){
  document.addEventListener('click', function(e){
    var target=e.target instanceof Element?e.target.closest('[data-copy-text]'):null;
    if(!target){ return; }
    var text=target.getAttribute('data-copy-text')||'';
    if(!navigator.clipboard||!navigator.clipboard.writeText){
      console.debug('clipboard unavailable, copy skipped');
      return;
    }
    navigator.clipboard.writeText(text).then(function(){
      target.classList.add('copied');
      window.setTimeout(function(){ target.classList.remove('copied'); }, 2000);
    }).catch(function(err){
      console.debug('clipboard write failed', err);
    });
  });
})();`
